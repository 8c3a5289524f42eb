package ez

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"go-users-posts-api/internal/core/database"
	resp "go-users-posts-api/internal/transport/http/response"
)

type EZ struct {
	g  *gin.RouterGroup
	st *database.Store
}

func New(g *gin.RouterGroup, st *database.Store) EZ { return EZ{g: g, st: st} }

// 绑定方式
type Binder string

const (
	BindJSON  Binder = "json"  // 从 JSON body 绑定
	BindQuery Binder = "query" // 从 URL ?a=b 绑定
	BindNone  Binder = "none"  // 不绑定，自己从 c.Param 取
)

// Err 带 HTTP 状态码的业务错误，最终写成 {"error": msg}。
type Err struct {
	Status int
	Msg    string
	Err    error
}

func (e *Err) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "action error"
}

func BadRequest(msg string) error { return &Err{Status: http.StatusBadRequest, Msg: msg} }
func NotFound(msg string) error   { return &Err{Status: http.StatusNotFound, Msg: msg} }

// Internal 存储层错误：消息按约定原样透传给调用方。
func Internal(err error) error { return &Err{Status: http.StatusInternalServerError, Err: err} }

// Action 一行注册一个端点：I 入参，O 出参。
type Action[I any, O any] struct {
	Method  string // "GET" | "POST" | "PUT" | "DELETE"
	Path    string // 例："/users/:userId/posts"
	Binder  Binder
	Status  int  // 成功状态码，0 表示 200
	UseTx   bool // 是否包事务
	Handler func(c *gin.Context, tx *gorm.DB, in *I) (O, error)
}

func Register[I any, O any](e EZ, a Action[I, O]) {
	h := func(c *gin.Context) {
		// 1) 拿共享存储句柄；开库失败对外就是 500
		db, err := e.st.Acquire(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, resp.Err(err.Error()))
			return
		}

		// 2) 绑定入参
		var in I
		var bindErr error
		switch a.Binder {
		case BindJSON:
			bindErr = c.ShouldBindJSON(&in)
			if errors.Is(bindErr, io.EOF) {
				// 空 body 等价于空对象，交给 handler 的字段校验
				bindErr = nil
			}
		case BindQuery:
			bindErr = c.ShouldBindQuery(&in)
		default: // BindNone
		}
		if bindErr != nil {
			c.JSON(http.StatusBadRequest, resp.Err(bindErr.Error()))
			return
		}

		// 3) 执行（可选事务）
		var out O
		if a.UseTx {
			err = db.Transaction(func(tx *gorm.DB) error {
				o, e2 := a.Handler(c, tx, &in)
				out = o
				return e2
			})
		} else {
			out, err = a.Handler(c, db, &in)
		}

		// 4) 统一错误映射
		if err != nil {
			var ae *Err
			if errors.As(err, &ae) {
				c.JSON(ae.Status, resp.Err(ae.Error()))
				return
			}
			c.JSON(http.StatusInternalServerError, resp.Err(err.Error()))
			return
		}
		status := a.Status
		if status == 0 {
			status = http.StatusOK
		}
		c.JSON(status, out)
	}

	switch strings.ToUpper(a.Method) {
	case http.MethodGet:
		e.g.GET(a.Path, h)
	case http.MethodPut:
		e.g.PUT(a.Path, h)
	case http.MethodDelete:
		e.g.DELETE(a.Path, h)
	default: // 默认 POST
		e.g.POST(a.Path, h)
	}
}
