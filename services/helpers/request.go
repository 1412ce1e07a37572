package helpers

import (
	"fmt"
	"io"

	"auction-platform/internal/auctionerrors"
	model "auction-platform/internal/models"

	"github.com/gin-gonic/gin"
)

// CurrentUserKey is the gin context key the auth middleware stores the
// resolved account under.
const CurrentUserKey = "currentUser"

// CurrentUser returns the authenticated account set by the auth middleware.
func CurrentUser(c *gin.Context) (model.User, bool) {
	v, ok := c.Get(CurrentUserKey)
	if !ok {
		return model.User{}, false
	}
	u, ok := v.(model.User)
	return u, ok
}

// ReadImageFile reads the named multipart file field, enforcing the
// accepted image content types.
func ReadImageFile(c *gin.Context, field string) (string, []byte, error) {
	header, err := c.FormFile(field)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %s file required", auctionerrors.ErrInvalidInput, field)
	}
	if !AllowedImageTypes[header.Header.Get("Content-Type")] {
		return "", nil, fmt.Errorf("%w: file format not supported", auctionerrors.ErrInvalidInput)
	}
	f, err := header.Open()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %s file unreadable", auctionerrors.ErrInvalidInput, field)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %s file unreadable", auctionerrors.ErrInvalidInput, field)
	}
	return header.Filename, data, nil
}
