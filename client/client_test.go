package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/oasislabs/decoder-client/abi"
	"github.com/oasislabs/decoder-client/errors"
	"github.com/oasislabs/decoder-client/log"
	"github.com/oasislabs/decoder-client/metrics"
	"github.com/oasislabs/decoder-client/payload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var Context = context.TODO()

var Logger = log.NewLogrus(log.LogrusLoggerProperties{
	Output: ioutil.Discard,
})

var testPayload = &payload.Payload{
	Txn:      "0x7b7e9c40f73ec6aa0b14ef61b485d7d41a9b2e70befed0b03face3bf3412c57e",
	ABI:      abi.ABI(`[{"name":"transfer","type":"function","inputs":[],"outputs":[]}]`),
	Contract: "contract Token {}\n",
}

type MockHttpClient struct {
	mock.Mock
}

func (c *MockHttpClient) Do(req *http.Request) (*http.Response, error) {
	args := c.Called(req)
	if args.Get(1) != nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*http.Response), nil
}

func textResponse(code int, body string) *http.Response {
	return &http.Response{
		StatusCode: code,
		Body:       ioutil.NopCloser(strings.NewReader(body)),
	}
}

func newClient(url string) *Client {
	return NewClientWithDeps(&Deps{
		Client:  &MockHttpClient{},
		Logger:  Logger,
		Metrics: metrics.NewRequestMetrics(prometheus.NewRegistry(), "decoder_client"),
	}, &Props{URL: url})
}

func newServerClient(url string) *Client {
	return NewClient(&Services{
		Logger:     Logger,
		Registerer: prometheus.NewRegistry(),
	}, &Props{URL: url})
}

func TestClientSendOK(t *testing.T) {
	client := newClient("http://localhost:8080/")
	mockclient := client.client.(*MockHttpClient)

	mockclient.On("Do",
		mock.MatchedBy(func(req *http.Request) bool {
			return req.Method == http.MethodPost &&
				req.URL.String() == "http://localhost:8080/" &&
				req.Header.Get("Content-Type") == "application/json"
		})).Return(textResponse(http.StatusOK, "OK"), nil)

	res, err := client.Send(Context, testPayload)

	assert.Nil(t, err)
	assert.Equal(t, &Response{StatusCode: http.StatusOK, Body: "OK"}, res)
	mockclient.AssertNumberOfCalls(t, "Do", 1)
	assert.Equal(t, float64(1), testutil.ToFloat64(client.metrics.RequestCounter(http.MethodPost, "2xx")))
}

func TestClientSendServerErrorIsResponse(t *testing.T) {
	client := newClient("http://localhost:8080/")
	mockclient := client.client.(*MockHttpClient)

	mockclient.On("Do", mock.Anything).
		Return(textResponse(http.StatusInternalServerError, "error"), nil)

	res, err := client.Send(Context, testPayload)

	assert.Nil(t, err)
	assert.Equal(t, &Response{StatusCode: http.StatusInternalServerError, Body: "error"}, res)
	mockclient.AssertNumberOfCalls(t, "Do", 1)
	assert.Equal(t, float64(1), testutil.ToFloat64(client.metrics.RequestCounter(http.MethodPost, "5xx")))
}

func TestClientSendTransportErrorNoRetry(t *testing.T) {
	client := newClient("http://localhost:8080/")
	mockclient := client.client.(*MockHttpClient)

	mockclient.On("Do", mock.Anything).
		Return(nil, fmt.Errorf("dial tcp 127.0.0.1:8080: connect: connection refused"))

	_, err := client.Send(Context, testPayload)

	assert.Equal(t, errors.ErrSendHttpRequest, errors.CodeOf(err))
	mockclient.AssertNumberOfCalls(t, "Do", 1)
	assert.Equal(t, float64(1), testutil.ToFloat64(client.metrics.RequestCounter(http.MethodPost, "fail")))
}

func TestClientSendInvalidURL(t *testing.T) {
	client := newClient("ftp://localhost:8080/")
	mockclient := client.client.(*MockHttpClient)

	_, err := client.Send(Context, testPayload)

	assert.Equal(t, errors.ErrInvalidURL, errors.CodeOf(err))
	mockclient.AssertNotCalled(t, "Do", mock.Anything)
}

func TestClientSendBody(t *testing.T) {
	type received struct {
		contentType string
		body        map[string]interface{}
	}
	requests := make(chan received, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		_ = json.NewDecoder(r.Body).Decode(&body)
		requests <- received{contentType: r.Header.Get("Content-Type"), body: body}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}))
	defer server.Close()

	res, err := newServerClient(server.URL + "/").Send(Context, testPayload)

	assert.Nil(t, err)
	assert.Equal(t, &Response{StatusCode: http.StatusOK, Body: "OK"}, res)

	req := <-requests
	assert.Equal(t, "application/json", req.contentType)
	assert.Equal(t, map[string]interface{}{
		"txn": testPayload.Txn,
		"abi": []interface{}{
			map[string]interface{}{
				"name":    "transfer",
				"type":    "function",
				"inputs":  []interface{}{},
				"outputs": []interface{}{},
			},
		},
		"contract": testPayload.Contract,
	}, req.body)
}

func TestClientSendConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := newServerClient(url).Send(Context, testPayload)

	assert.Equal(t, errors.ErrSendHttpRequest, errors.CodeOf(err))
}

func TestClientSendNoTimeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	done := make(chan struct{})
	go func() {
		_, _ = newServerClient(server.URL).Send(Context, testPayload)
		close(done)
	}()

	// the decoder never answers while release is open, so Send
	// must still be waiting once the bounded wait expires
	select {
	case <-done:
		t.Fatal("Send returned before the decoder responded")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestClientSendConfiguredTimeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	client := NewClient(&Services{
		Logger:     Logger,
		Registerer: prometheus.NewRegistry(),
	}, &Props{URL: server.URL, Timeout: 50 * time.Millisecond})

	_, err := client.Send(Context, testPayload)

	assert.Equal(t, errors.ErrSendHttpRequest, errors.CodeOf(err))
}
