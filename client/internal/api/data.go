package api

import (
	"context"
	"net/http"

	"github.com/error404/rfid-client/client/internal/types"
)

// FetchData issues GET {baseURL}/get_data.php with no body.
func FetchData(ctx context.Context, httpClient types.HTTPClient, baseURL string) (*types.Response, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+DataPath, nil)
	if err != nil {
		return nil, err
	}
	return do(httpClient, httpReq, "fetch data")
}
