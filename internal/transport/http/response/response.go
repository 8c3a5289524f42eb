package response

// ErrorBody 是所有失败响应的统一外壳。
type ErrorBody struct {
	Error string `json:"error"`
}

func Err(msg string) ErrorBody { return ErrorBody{Error: msg} }

// Health 健康检查的外壳，失败时多一个 error 字段。
type Health struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

func HealthOK() Health {
	return Health{Status: "ok", Message: "Backend is healthy and DB is accessible"}
}

func HealthDown(err error) Health {
	return Health{
		Status:  "error",
		Message: "Backend is unhealthy, DB connection failed",
		Error:   err.Error(),
	}
}
