package api

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/error404/rfid-client/client/internal/types"
)

// ToggleRFID issues POST {baseURL}/update_status.php with the form body
// rfid=<value>. The value is forwarded as given; only form encoding applies.
func ToggleRFID(ctx context.Context, httpClient types.HTTPClient, baseURL, rfid string) (*types.Response, error) {
	form := url.Values{"rfid": {rfid}}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+StatusPath, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return do(httpClient, httpReq, "toggle rfid")
}
