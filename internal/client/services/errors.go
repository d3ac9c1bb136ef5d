package services

// ValidationError reports missing or malformed user input. Message is meant
// for the user as is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

const (
	MsgUploadFieldsRequired   = "Please select a file and provide your user ID."
	MsgDownloadFieldsRequired = "Please provide both the file name and your user ID."
	MsgFetchFieldsRequired    = "Please provide both the file URL and your user ID."
	MsgS3NotConfigured        = "S3 links need S3 settings (FILEDESK_S3_REGION)."
	MsgInvalidS3Reference     = "S3 links must look like s3://bucket/key."
	MsgUploadSucceeded        = "File uploaded successfully!"
	MsgDownloadSucceeded      = "File downloaded successfully!"
)

func invalid(msg string) error {
	return &ValidationError{Message: msg}
}
