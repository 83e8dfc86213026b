package cubejs

import (
	"github.com/stretchr/testify/mock"
	"io/ioutil"
	"net/http"
	"strings"
)

// MockedResponse is what a TransportMock expectation returns: the status
// and body the fake server would have sent.
type MockedResponse struct {
	Status int
	Body   string
}

// TransportMock fakes the HTTP round trip. A fresh response is built per
// call, so retried requests never see an already drained body.
type TransportMock struct {
	mock.Mock
}

func (o *TransportMock) RoundTrip(req *http.Request) (*http.Response, error) {
	args := o.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	mocked := args.Get(0).(MockedResponse)
	return &http.Response{
		StatusCode: mocked.Status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       ioutil.NopCloser(strings.NewReader(mocked.Body)),
		Request:    req,
	}, args.Error(1)
}
