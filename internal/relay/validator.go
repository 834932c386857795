package relay

import (
	"encoding/json"
	"fmt"
	"strings"

	"remitscan/internal/domain"
)

// AllowedMediaTypes is the closed set of media types the relay forwards.
var AllowedMediaTypes = []string{
	"application/pdf",
	"image/jpeg",
	"image/jpg",
	"image/png",
	"image/gif",
	"image/webp",
}

var allowedMediaTypeSet = func() map[string]bool {
	m := make(map[string]bool, len(AllowedMediaTypes))
	for _, t := range AllowedMediaTypes {
		m[t] = true
	}
	return m
}()

// Validate parses a raw request body and returns the document block to
// forward upstream. A malformed JSON body returns a wrapped error (the
// request never reached validation); a well-formed body that fails the
// checks returns a *domain.ValidationError with every reason collected.
func Validate(body []byte, maxBytes int64) (*domain.DocumentBlock, error) {
	var req domain.ExtractionRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, fmt.Errorf("parsing request body: %w", err)
	}

	block := findDocumentBlock(&req)
	if block == nil {
		// Remaining checks dereference the block, so this one short-circuits.
		return nil, &domain.ValidationError{Reasons: []string{
			"no document or image content block found in messages",
		}}
	}

	if reasons := ValidateBlock(block, maxBytes); len(reasons) > 0 {
		return nil, &domain.ValidationError{Reasons: reasons}
	}
	return block, nil
}

// ValidateBlock runs every check against a content block and returns the
// full list of failure reasons. Failures are collected, not short-circuited.
func ValidateBlock(block *domain.DocumentBlock, maxBytes int64) []string {
	var reasons []string

	if block.Type != domain.BlockTypeImage && block.Type != domain.BlockTypeDocument {
		reasons = append(reasons, fmt.Sprintf(
			"content type %q is not recognized; expected %q or %q",
			block.Type, domain.BlockTypeImage, domain.BlockTypeDocument))
	}
	if block.Source.Type != domain.SourceTypeBase64 {
		reasons = append(reasons, fmt.Sprintf(
			"source type %q is not supported; expected %q",
			block.Source.Type, domain.SourceTypeBase64))
	}
	if block.Source.Data == "" {
		reasons = append(reasons, "base64 data is empty")
	}
	if !allowedMediaTypeSet[block.Source.MediaType] {
		reasons = append(reasons, fmt.Sprintf(
			"media type %q is not allowed; allowed types: %s",
			block.Source.MediaType, strings.Join(AllowedMediaTypes, ", ")))
	}
	if est := EstimatedDecodedSize(block.Source.Data); est > float64(maxBytes) {
		reasons = append(reasons, fmt.Sprintf(
			"document too large: estimated %.0f bytes exceeds the %d byte limit",
			est, maxBytes))
	}

	return reasons
}

// EstimatedDecodedSize estimates the decoded byte length of a base64 string
// using the standard 0.75 expansion ratio, without decoding it.
func EstimatedDecodedSize(data string) float64 {
	return float64(len(data)) * 0.75
}

// findDocumentBlock returns the first document or image content block in the
// request, or, when no block carries a recognized type, the first block of
// any kind so its type can be reported as a validation failure. Returns nil
// only when no content blocks exist at all.
func findDocumentBlock(req *domain.ExtractionRequest) *domain.DocumentBlock {
	var first *domain.DocumentBlock
	for i := range req.Messages {
		for j := range req.Messages[i].Content {
			b := &req.Messages[i].Content[j]
			if b.Type == domain.BlockTypeImage || b.Type == domain.BlockTypeDocument {
				return b
			}
			if first == nil {
				first = b
			}
		}
	}
	return first
}
