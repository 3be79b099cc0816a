package a

import (
	"context"
	"net/http"
)

func bad() {
	resp, _ := http.Get("http://localhost:8080/flights") // want "http.Get used outside httpapi"
	_ = resp
}

func badPost() {
	_, _ = http.Post("http://localhost:8080/flights", "application/json", nil) // want "http.Post used outside httpapi"
}

func badRequest(ctx context.Context) {
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, "http://localhost:8080/gates", nil) // want "http.NewRequestWithContext used outside httpapi"
	_, _ = http.DefaultClient.Do(req)                                                             // want "http.DefaultClient used outside httpapi"
}

func goodStatus(code int) bool {
	return code == http.StatusConflict
}

func goodHeader(h http.Header) string {
	return h.Get("Content-Type")
}
