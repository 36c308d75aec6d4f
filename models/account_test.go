package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAccount_AwaitingConfirmation(t *testing.T) {
	token := "outstanding"
	sentAt := time.Now()

	tests := []struct {
		name    string
		account Account
		want    bool
	}{
		{
			name:    "fresh registration",
			account: Account{Enabled: false, ConfirmationToken: &token, ConfirmationSentAt: &sentAt},
			want:    true,
		},
		{
			name:    "confirmed account",
			account: Account{Enabled: true},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.account.AwaitingConfirmation())
		})
	}
}

func TestAccount_TableName(t *testing.T) {
	assert.Equal(t, "accounts", Account{}.TableName())
}
