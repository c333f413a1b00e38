package response

// AErr carries a business code through handler returns so the writer can map
// it to a status and envelope in one place.
type AErr struct {
	Code int
	Msg  string
	Err  error
}

func (e *AErr) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "request failed"
}

func (e *AErr) Unwrap() error { return e.Err }

func BadRequest(msg string) error    { return &AErr{Code: CodeBadRequest, Msg: msg} }
func Unauthorized(msg string) error  { return &AErr{Code: CodeUnauthorized, Msg: msg} }
func NotFound(msg string) error      { return &AErr{Code: CodeNotFound, Msg: msg} }
func Unprocessable(msg string) error { return &AErr{Code: CodeUnprocessable, Msg: msg} }
func Unavailable(msg string, err error) error {
	return &AErr{Code: CodeUnavailable, Msg: msg, Err: err}
}
func Internal(msg string, err error) error {
	return &AErr{Code: CodeServerError, Msg: msg, Err: err}
}
