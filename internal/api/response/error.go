package response

// ErrorBody is the JSON shape of every error response. Detail carries the
// client-facing message from the error taxonomy.
type ErrorBody struct {
	Code   int    `json:"code"`
	Detail string `json:"detail"`
}

func (e ErrorBody) Error() string {
	return e.Detail
}

func NewError(code int, detail string) ErrorBody {
	return ErrorBody{
		Code:   code,
		Detail: detail,
	}
}
