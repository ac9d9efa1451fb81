package biletbudur

import (
	"context"
	"errors"
	"net/http"

	"github.com/emreeozkull/biletbudur-cli/internal/utils/api"
)

const (
	statusPath = accountsAPI + "/token/"
)

// ErrServerNotReachable is returned when the server cannot be reached
var ErrServerNotReachable = errors.New("biletbudur server is not reachable")

// Status checks the server responds, any HTTP response counts as reachable
func (c *client) Status(ctx context.Context) error {
	res, err := c.do(ctx, http.MethodOptions, statusPath, api.RequestOptions{NoAuth: true})
	if err != nil {
		var networkErr api.NetworkError
		if errors.As(err, &networkErr) {
			return ErrServerNotReachable
		}
		if api.StatusCode(err) != 0 {
			return nil
		}
		return err
	}
	res.Body.Close()
	return nil
}
