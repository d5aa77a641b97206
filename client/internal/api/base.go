package api

import (
	"fmt"
	"io"
	"net/http"

	clienterrors "github.com/error404/rfid-client/client/internal/errors"
	"github.com/error404/rfid-client/client/internal/types"
)

// Endpoint paths appended to the configured base URL.
const (
	DataPath   = "/get_data.php"
	StatusPath = "/update_status.php"
)

// do sends req and hands back the exchange verbatim. Any 2xx status is a
// success; everything else becomes a *ClassifiedError carrying the response.
func do(httpClient types.HTTPClient, req *http.Request, operation string) (*types.Response, error) {
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, clienterrors.NewNetworkError(operation, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, clienterrors.NewNetworkError(operation, fmt.Errorf("read body: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, clienterrors.NewHTTPError(operation, resp.StatusCode, resp.Header, body)
	}

	return &types.Response{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Header:     resp.Header,
		Body:       body,
	}, nil
}
