package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Auth.BcryptCost < 4 || c.Auth.BcryptCost > 31 {
		return fmt.Errorf("auth.bcrypt_cost must be between 4 and 31 (got %d)", c.Auth.BcryptCost)
	}

	if err := c.Chat.validate(); err != nil {
		return fmt.Errorf("chat: %w", err)
	}

	return nil
}

func (c *ChatConfig) validate() error {
	if c.MaxMessageLength <= 0 {
		return fmt.Errorf("max_message_length must be > 0 (got %d)", c.MaxMessageLength)
	}
	if c.HistoryPageSize <= 0 {
		return fmt.Errorf("history_page_size must be > 0 (got %d)", c.HistoryPageSize)
	}
	if c.SendBuffer <= 0 {
		return fmt.Errorf("send_buffer must be > 0 (got %d)", c.SendBuffer)
	}
	if c.PingInterval >= c.PongTimeout {
		return fmt.Errorf("ping_interval (%s) must be shorter than pong_timeout (%s)", c.PingInterval, c.PongTimeout)
	}
	return nil
}
