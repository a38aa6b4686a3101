package client

// Response is the outcome of a request that reached the decoder,
// whatever its status code
type Response struct {
	// StatusCode is the http status code returned by the decoder
	StatusCode int

	// Body is the raw response body
	Body string
}
