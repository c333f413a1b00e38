package response

// Business codes track HTTP semantics directly.
const (
	CodeOK            = 0
	CodeBadRequest    = 400
	CodeUnauthorized  = 401
	CodeForbidden     = 403
	CodeNotFound      = 404
	CodeUnprocessable = 422
	CodeServerError   = 500
	CodeUnavailable   = 503
)

var CodeMsgMap = map[int]string{
	CodeOK:            "OK",
	CodeBadRequest:    "Bad Request",
	CodeUnauthorized:  "Unauthorized",
	CodeForbidden:     "Forbidden",
	CodeNotFound:      "Not Found",
	CodeUnprocessable: "Unprocessable Entity",
	CodeServerError:   "Internal Server Error",
	CodeUnavailable:   "Service Unavailable",
}

// HTTPStatus maps a business code to the status line it rides on.
func HTTPStatus(code int) int {
	if code == CodeOK {
		return 200
	}
	return code
}
