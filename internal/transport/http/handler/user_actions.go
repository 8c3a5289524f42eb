package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"go-users-posts-api/internal/core/database"
	"go-users-posts-api/internal/repo"
	httpez "go-users-posts-api/internal/transport/http/ez"
	"go-users-posts-api/pkg/pagination"
)

const defaultUserLimit = 10

// MountUserActions 挂载 GET /users
func MountUserActions(api *gin.RouterGroup, st *database.Store) {
	ez := httpez.New(api, st)

	type listQ struct {
		Page  string `form:"_page"`
		Limit string `form:"_limit"`
	}
	type addressOut struct {
		Street  string `json:"street"`
		City    string `json:"city"`
		State   string `json:"state"`
		Zipcode string `json:"zipcode"`
	}
	type row struct {
		ID      string      `json:"id"`
		Name    string      `json:"name"`
		Email   string      `json:"email"`
		Phone   string      `json:"phone"`
		Address *addressOut `json:"address"` // 没有地址时为 null，而不是空对象
	}
	type pageOut struct {
		Total      int64 `json:"total"`
		Page       int   `json:"page"`
		Limit      int   `json:"limit"`
		TotalPages int   `json:"totalPages"`
	}
	type listOut struct {
		Data       []row   `json:"data"`
		Pagination pageOut `json:"pagination"`
	}

	httpez.Register[listQ, listOut](ez, httpez.Action[listQ, listOut]{
		Method: http.MethodGet,
		Path:   "/users",
		Binder: httpez.BindQuery,
		Handler: func(c *gin.Context, tx *gorm.DB, in *listQ) (listOut, error) {
			p := pagination.Parse(in.Page, in.Limit, defaultUserLimit)
			users := repo.NewUserRepo(tx)

			total, err := users.Count()
			if err != nil {
				return listOut{}, httpez.Internal(err)
			}
			page, err := users.ListWithAddress(p.Offset(), p.Limit)
			if err != nil {
				return listOut{}, httpez.Internal(err)
			}

			out := listOut{
				Data: make([]row, 0, len(page)),
				Pagination: pageOut{
					Total:      total,
					Page:       p.Page,
					Limit:      p.Limit,
					TotalPages: pagination.TotalPages(total, p.Limit),
				},
			}
			for _, u := range page {
				r := row{ID: u.ID, Name: u.Name, Email: u.Email, Phone: u.Phone}
				if u.Address != nil {
					r.Address = &addressOut{
						Street:  u.Address.Street,
						City:    u.Address.City,
						State:   u.Address.State,
						Zipcode: u.Address.Zipcode,
					}
				}
				out.Data = append(out.Data, r)
			}
			return out, nil
		},
	})
}
