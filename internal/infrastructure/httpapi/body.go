package httpapi

import "io"

// Body is a request payload. It is either a JSONBody or a BinaryBody; the
// caller decides which, and only JSON bodies are scrubbed and labelled as
// application/json.
type Body interface {
	isBody()
}

// JSONBody is a payload encoded as JSON after scrubbing.
type JSONBody struct {
	Value any
}

// BinaryBody is a payload sent as-is, such as a file upload or multipart
// form. ContentType is sent when set; no JSON content type is ever injected.
type BinaryBody struct {
	Reader      io.Reader
	ContentType string
}

func (JSONBody) isBody()   {}
func (BinaryBody) isBody() {}

// JSON wraps v as a JSON request body.
func JSON(v any) Body {
	return JSONBody{Value: v}
}

// Binary wraps r as a raw request body.
func Binary(r io.Reader, contentType string) Body {
	return BinaryBody{Reader: r, ContentType: contentType}
}
