package errno

import (
	"errors"
	"fmt"
)

const (
	SuccessCode                = 0
	ServiceErrCode             = 10001
	ParamErrCode               = 10002
	AuthorizationFailedErrCode = 10003
	RecordNotFoundErrCode      = 10004
	DuplicateErrCode           = 10005
)

type ErrNo struct {
	ErrCode int64
	ErrMsg  string
}

func (e ErrNo) Error() string {
	return fmt.Sprintf("err_code=%d, err_msg=%s", e.ErrCode, e.ErrMsg)
}

func NewErrNo(code int64, msg string) ErrNo {
	return ErrNo{ErrCode: code, ErrMsg: msg}
}

func (e ErrNo) WithMessage(msg string) ErrNo {
	e.ErrMsg = msg
	return e
}

var (
	Success                = NewErrNo(SuccessCode, "success")
	ServiceErr             = NewErrNo(ServiceErrCode, "service is unable to handle this request")
	ParamErr               = NewErrNo(ParamErrCode, "wrong parameter has been given")
	AuthorizationFailedErr = NewErrNo(AuthorizationFailedErrCode, "authorization failed")
	RecordNotFoundErr      = NewErrNo(RecordNotFoundErrCode, "record not found")
	DuplicateErr           = NewErrNo(DuplicateErrCode, "record already exists")
)

// ConvertErr maps any error to an ErrNo; unknown errors become ServiceErr.
func ConvertErr(err error) ErrNo {
	Err := ErrNo{}
	if errors.As(err, &Err) {
		return Err
	}
	s := ServiceErr
	s.ErrMsg = err.Error()
	return s
}
