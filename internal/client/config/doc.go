// Package config loads runtime configuration for the filedesk CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment: an optional dotenv file (-e or -env, else ./.env when it
//     exists) followed by FILEDESK_* variables (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the file service
//	-d string   directory where downloaded attachments are saved
//	-t int      request timeout (seconds)
//	-l string   log level: debug, info, warn, error
//
// # JSON schema
//
// Durations use timex.Duration, so values can be strings like "30s" or
// integer nanoseconds:
//
//	{
//	  "server_url": "http://127.0.0.1:5000",
//	  "download_dir": "downloads",
//	  "request_timeout": "60s",
//	  "log_level": "info",
//	  "s3": {
//	    "region": "us-east-1",
//	    "base_endpoint": "http://127.0.0.1:9000",
//	    "access_key": "minioadmin",
//	    "secret_key": "minioadmin",
//	    "presign_ttl": "15m"
//	  }
//	}
//
// # Environment
//
//	FILEDESK_SERVER_URL, FILEDESK_DOWNLOAD_DIR, FILEDESK_REQUEST_TIMEOUT,
//	FILEDESK_LOG_LEVEL, FILEDESK_S3_REGION, FILEDESK_S3_ENDPOINT,
//	FILEDESK_S3_ACCESS_KEY, FILEDESK_S3_SECRET_KEY, FILEDESK_S3_PRESIGN_TTL
package config
