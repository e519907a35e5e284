package interfaces

import "context"

// IFileStorage abstracts the attachment store (e.g. S3). Upload persists one
// binary and returns its stable URL; it is only called during submission,
// never while a file sits staged on the draft.
type IFileStorage interface {
	Upload(ctx context.Context, fileName, contentType string, data []byte) (url string, err error)
}
