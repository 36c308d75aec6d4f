package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for the JSON file source.
// Durations are accepted as Go duration strings (e.g. "24h", "30s").
type StructuredJSONConfig struct {
	App struct {
		ConfirmationBaseURL  string   `json:"confirmation_base_url"`
		ResetBaseURL         string   `json:"reset_base_url"`
		ConfirmationTokenTTL Duration `json:"confirmation_token_ttl"`
		ResetTokenTTL        Duration `json:"reset_token_ttl"`
	} `json:"app,omitempty"`

	Mail struct {
		Host        string   `json:"host"`
		Port        int      `json:"port"`
		Username    string   `json:"username"`
		Password    string   `json:"password"`
		From        string   `json:"from"`
		SendTimeout Duration `json:"send_timeout"`
		QueueSize   int      `json:"queue_size"`
	} `json:"mail,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`
}

// Duration wraps time.Duration so that JSON config files can express
// durations as strings ("24h") or raw nanosecond numbers.
type Duration time.Duration

// UnmarshalJSON implements json.Unmarshaler for [Duration].
func (d *Duration) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch value := raw.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("error parsing duration %q: %w", value, err)
		}
		*d = Duration(parsed)
		return nil
	default:
		return fmt.Errorf("unsupported duration value: %v", raw)
	}
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			ConfirmationBaseURL:  jsonCfg.App.ConfirmationBaseURL,
			ResetBaseURL:         jsonCfg.App.ResetBaseURL,
			ConfirmationTokenTTL: time.Duration(jsonCfg.App.ConfirmationTokenTTL),
			ResetTokenTTL:        time.Duration(jsonCfg.App.ResetTokenTTL),
		},
		Mail: Mail{
			Host:        jsonCfg.Mail.Host,
			Port:        jsonCfg.Mail.Port,
			Username:    jsonCfg.Mail.Username,
			Password:    jsonCfg.Mail.Password,
			From:        jsonCfg.Mail.From,
			SendTimeout: time.Duration(jsonCfg.Mail.SendTimeout),
			QueueSize:   jsonCfg.Mail.QueueSize,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
	}

	return cfg, nil
}
