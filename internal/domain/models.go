package domain

// BlockTypeImage and BlockTypeDocument are the two recognized inbound
// content block types. Documents are PDFs; images are everything else.
const (
	BlockTypeImage    = "image"
	BlockTypeDocument = "document"
)

// SourceTypeBase64 is the only supported payload encoding.
const SourceTypeBase64 = "base64"

// DocumentSource is the base64 payload of an inbound content block.
type DocumentSource struct {
	Type      string `json:"type"`
	MediaType string `json:"media_type"`
	Data      string `json:"data"`
}

// DocumentBlock is a validated document or image content block, ready to be
// forwarded upstream unchanged.
type DocumentBlock struct {
	Type   string         `json:"type"`
	Source DocumentSource `json:"source"`
}

// ExtractionRequest mirrors the inbound POST /extract body. The relay only
// inspects it far enough to find the first document or image block; the rest
// is ignored.
type ExtractionRequest struct {
	Messages []struct {
		Role    string          `json:"role"`
		Content []DocumentBlock `json:"content"`
	} `json:"messages"`
}
