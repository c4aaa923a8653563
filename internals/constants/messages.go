package constants

import "fmt"

// Pesan error upload evidence
const (
	ErrEmptyUpload      = "The uploaded file is empty."
	ErrOnlyImages       = "Only image files are allowed."
	ErrUploadTooLarge   = "The uploaded file exceeds the %s limit."
	ErrFileNameTaken    = "An image with file name '%s' already exists."
	MsgImageUploaded    = "Image uploaded successfully."
	MsgImageReplaced    = "Image updated successfully."
	DefaultEvidenceName = "unnamed.jpg"
)

func UploadTooLarge(limit string) string {
	return fmt.Sprintf(ErrUploadTooLarge, limit)
}

func FileNameTaken(name string) string {
	return fmt.Sprintf(ErrFileNameTaken, name)
}
