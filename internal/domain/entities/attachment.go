package entities

// AttachmentKind selects one of the two required binaries on a draft.

type AttachmentKind string

const (
	AttachmentKindQRCode    AttachmentKind = "qr_code"
	AttachmentKindItemPhoto AttachmentKind = "item_photo"
)

func (k AttachmentKind) Valid() bool {
	return k == AttachmentKindQRCode || k == AttachmentKindItemPhoto
}

// AttachmentState tags where the binary currently lives. A pending
// attachment holds the bytes in memory; an uploaded one holds only the
// storage URL. Keeping this as one tagged value (instead of a file handle
// plus a loose preview string) stops the preview and the upload target from
// drifting apart.

type AttachmentState string

const (
	AttachmentStatePending  AttachmentState = "pending"
	AttachmentStateUploaded AttachmentState = "uploaded"
)

// MaxAttachmentBytes is the per-file ceiling enforced at staging time and
// again by the step-3 validator.
const MaxAttachmentBytes = 5 * 1024 * 1024

type Attachment struct {
	State       AttachmentState `json:"state"`
	FileName    string          `json:"file_name"`
	ContentType string          `json:"content_type"`
	Size        int64           `json:"size"`

	// Data is set only while State == pending. It is dropped once the
	// upload during submission yields a URL.
	Data []byte `json:"-"`

	// URL is set only once State == uploaded.
	URL string `json:"url,omitempty"`
}

// NewPendingAttachment stages a file in memory. No storage call happens
// here; the upload is deferred to submission.
func NewPendingAttachment(fileName, contentType string, data []byte) *Attachment {
	return &Attachment{
		State:       AttachmentStatePending,
		FileName:    fileName,
		ContentType: contentType,
		Size:        int64(len(data)),
		Data:        data,
	}
}

// MarkUploaded transitions pending -> uploaded and releases the buffered
// bytes.
func (a *Attachment) MarkUploaded(url string) {
	a.State = AttachmentStateUploaded
	a.URL = url
	a.Data = nil
}
