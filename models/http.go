// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Elisée Courtial

package models

// RegisterRequest is the JSON body of POST /api/auth/register.
type RegisterRequest struct {
	// Email is the address the confirmation link will be sent to.
	Email string `json:"email"`

	// Password is the raw credential chosen by the user. It is hashed
	// immediately by the service and never stored as received.
	Password string `json:"password"`
}

// LoginRequest is the JSON body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ForgotPasswordRequest is the JSON body of POST /api/auth/forgot-password.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest is the JSON body of POST /api/auth/reset-password.
type ResetPasswordRequest struct {
	// Token is the reset token received by email.
	Token string `json:"token"`

	// NewPassword is the replacement credential.
	NewPassword string `json:"newPassword"`
}

// MessageResponse is the generic success/failure JSON body returned by the
// auth endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginResponse is returned on a successful login. No session or API token
// is minted by this service; the response carries identity only.
type LoginResponse struct {
	Message string `json:"message"`
	Email   string `json:"email"`
}
