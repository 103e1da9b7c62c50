package http

import (
	"net/url"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

const actorHeader = "X-Actor-ID"

// pathString binds a path parameter. echo hands over the decoded value and the
// binder decodes again, so the value is escaped back first.
func pathString(c echo.Context, name string) (string, error) {
	var value string
	err := runtime.BindStyledParameterWithOptions("simple", name, url.PathEscape(c.Param(name)), &value,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Required: true})
	if err != nil {
		return "", badRequest(err)
	}
	return value, nil
}

func pathUUID(c echo.Context, name string) (kernel.UUID, error) {
	raw, err := pathString(c, name)
	if err != nil {
		return kernel.UUID{}, err
	}
	return kernel.UUIDFromString(raw)
}

// actorID reads the operator performing the request.
func actorID(c echo.Context) (kernel.UUID, error) {
	var raw string
	err := runtime.BindStyledParameterWithOptions("simple", actorHeader, c.Request().Header.Get(actorHeader), &raw,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationHeader, Required: true})
	if err != nil {
		return kernel.UUID{}, badRequest(err)
	}
	return kernel.UUIDFromString(raw)
}

func queryString(c echo.Context, name string) (string, error) {
	var value *string
	if err := runtime.BindQueryParameter("form", true, false, name, c.QueryParams(), &value); err != nil {
		return "", badRequest(err)
	}
	if value == nil {
		return "", nil
	}
	return *value, nil
}

func queryInt(c echo.Context, name string) (int, error) {
	var value *int
	if err := runtime.BindQueryParameter("form", true, false, name, c.QueryParams(), &value); err != nil {
		return 0, badRequest(err)
	}
	if value == nil {
		return 0, nil
	}
	return *value, nil
}

// queryTime reads a required RFC 3339 timestamp.
func queryTime(c echo.Context, name string) (time.Time, error) {
	var raw string
	if err := runtime.BindQueryParameter("form", true, true, name, c.QueryParams(), &raw); err != nil {
		return time.Time{}, badRequest(err)
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return t, nil
}
