package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/filedesk/internal/flagx"
	"github.com/dmitrijs2005/filedesk/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields tell "absent" apart from "set to the zero value".
type JsonConfig struct {
	ServerURL      *string         `json:"server_url"`
	DownloadDir    *string         `json:"download_dir"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	LogLevel       *string         `json:"log_level"`
	S3             *JsonS3Config   `json:"s3"`
}

type JsonS3Config struct {
	Region       *string         `json:"region"`
	BaseEndpoint *string         `json:"base_endpoint"`
	AccessKey    *string         `json:"access_key"`
	SecretKey    *string         `json:"secret_key"`
	PresignTTL   *timex.Duration `json:"presign_ttl"`
}

// parseJson overlays cfg with the JSON file named by -c/-config. Without the
// flag it does nothing; only keys present in the file are applied.
func parseJson(cfg *Config) error {
	path := flagx.JsonConfigFlags()
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return err
	}

	setString(&cfg.ServerURL, jc.ServerURL)
	setString(&cfg.DownloadDir, jc.DownloadDir)
	setString(&cfg.LogLevel, jc.LogLevel)
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}

	if s := jc.S3; s != nil {
		setString(&cfg.S3.Region, s.Region)
		setString(&cfg.S3.BaseEndpoint, s.BaseEndpoint)
		setString(&cfg.S3.AccessKey, s.AccessKey)
		setString(&cfg.S3.SecretKey, s.SecretKey)
		if s.PresignTTL != nil {
			cfg.S3.PresignTTL = s.PresignTTL.Duration
		}
	}

	return nil
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
