package entity

import "net/http"

const (
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeFileTooLarge     = "FILE_TOO_LARGE"
	CodePayloadTooLarge  = "PAYLOAD_TOO_LARGE"
)

const PayloadTooLargeMessage = "File is too large for Notion API. Please upload your file to an external " +
	"service (Imgur, Cloudinary, etc.) and use the \"URL Content\" tab to add the link instead."

// Failure is an error that already knows how the bridge reports it.
type Failure struct {
	Status  int
	Code    string
	Message string
	Details any
	Err     error
}

func (f *Failure) Error() string {
	return f.Message
}

func (f *Failure) Unwrap() error {
	return f.Err
}

func BadRequest(code, msg string) *Failure {
	return &Failure{Status: http.StatusBadRequest, Code: code, Message: msg}
}

// PayloadTooLarge is a size rejection, either by the bridge's own body
// limit or by the external service. Its code lets the client point at the
// URL flow.
func PayloadTooLarge(err error) *Failure {
	return &Failure{
		Status:  http.StatusRequestEntityTooLarge,
		Code:    CodePayloadTooLarge,
		Message: PayloadTooLargeMessage,
		Err:     err,
	}
}
