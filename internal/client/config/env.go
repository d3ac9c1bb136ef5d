package config

import (
	"errors"
	"io/fs"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"

	"github.com/dmitrijs2005/filedesk/internal/flagx"
)

const defaultEnvFile = ".env"

// parseEnv loads the dotenv file (explicit -e/-env, or ./.env if present)
// without overriding variables already set in the process, then overlays
// cfg with the FILEDESK_* variables. Unset variables keep earlier values.
func parseEnv(cfg *Config) error {
	if path := flagx.EnvFileFlags(); path != "" {
		if err := godotenv.Load(path); err != nil {
			return err
		}
	} else if err := godotenv.Load(defaultEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	return cleanenv.ReadEnv(cfg)
}
