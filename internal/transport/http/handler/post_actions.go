package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"go-users-posts-api/internal/core/database"
	"go-users-posts-api/internal/domain"
	"go-users-posts-api/internal/repo"
	httpez "go-users-posts-api/internal/transport/http/ez"
	"go-users-posts-api/pkg/pagination"
	"go-users-posts-api/pkg/utils"
)

const defaultPostLimit = 20

const (
	msgUserNotFound   = "User not found"
	msgPostNotFound   = "Post not found"
	msgFieldsRequired = "User ID, title, and body are required to create a post."
)

// MountPostActions 挂载帖子相关的三个端点。
func MountPostActions(api *gin.RouterGroup, st *database.Store) {
	ez := httpez.New(api, st)

	// --- GET /users/:userId/posts ---
	type listQ struct {
		Page  string `form:"_page"`
		Limit string `form:"_limit"`
	}
	type row struct {
		ID     string `json:"id"`
		UserID string `json:"userId"`
		Title  string `json:"title"`
		Body   string `json:"body"`
	}
	type pageOut struct {
		Total int64 `json:"total"`
		Page  int   `json:"page"`
		Limit int   `json:"limit"`
	}
	type listOut struct {
		Data       []row   `json:"data"`
		Pagination pageOut `json:"pagination"`
	}

	httpez.Register[listQ, listOut](ez, httpez.Action[listQ, listOut]{
		Method: http.MethodGet,
		Path:   "/users/:userId/posts",
		Binder: httpez.BindQuery,
		Handler: func(c *gin.Context, tx *gorm.DB, in *listQ) (listOut, error) {
			userID := c.Param("userId")
			p := pagination.Parse(in.Page, in.Limit, defaultPostLimit)
			users, posts := repo.NewUserRepo(tx), repo.NewPostRepo(tx)

			ok, err := users.Exists(userID)
			if err != nil {
				return listOut{}, httpez.Internal(err)
			}
			if !ok {
				return listOut{}, httpez.NotFound(msgUserNotFound)
			}

			total, err := posts.CountByUser(userID)
			if err != nil {
				return listOut{}, httpez.Internal(err)
			}
			page, err := posts.ListByUser(userID, p.Offset(), p.Limit)
			if err != nil {
				return listOut{}, httpez.Internal(err)
			}

			out := listOut{
				Data:       make([]row, 0, len(page)),
				Pagination: pageOut{Total: total, Page: p.Page, Limit: p.Limit},
			}
			for _, post := range page {
				out.Data = append(out.Data, row{ID: post.ID, UserID: post.UserID, Title: post.Title, Body: post.Body})
			}
			return out, nil
		},
	})

	// --- POST /posts ---
	type createIn struct {
		UserID string `json:"userId"`
		Title  string `json:"title"`
		Body   string `json:"body"`
	}
	type createdPost struct {
		ID        string `json:"id"`
		UserID    string `json:"userId"`
		Title     string `json:"title"`
		Body      string `json:"body"`
		CreatedAt string `json:"createdAt"`
	}
	type createOut struct {
		Message string      `json:"message"`
		Post    createdPost `json:"post"`
	}

	httpez.Register[createIn, createOut](ez, httpez.Action[createIn, createOut]{
		Method: http.MethodPost,
		Path:   "/posts",
		Binder: httpez.BindJSON,
		Status: http.StatusCreated,
		Handler: func(c *gin.Context, tx *gorm.DB, in *createIn) (createOut, error) {
			// 校验顺序固定：先字段，后用户存在性。只拒绝空串，纯空白算有值
			if in.UserID == "" || in.Title == "" || in.Body == "" {
				return createOut{}, httpez.BadRequest(msgFieldsRequired)
			}

			users, posts := repo.NewUserRepo(tx), repo.NewPostRepo(tx)
			ok, err := users.Exists(in.UserID)
			if err != nil {
				return createOut{}, httpez.Internal(err)
			}
			if !ok {
				return createOut{}, httpez.NotFound(msgUserNotFound)
			}

			// 存在性检查到插入之间没有事务，并发删用户有个极窄的竞态，属可接受范围
			now := time.Now().UTC()
			post := domain.Post{
				ID:        utils.NewPostID(),
				UserID:    in.UserID,
				Title:     in.Title,
				Body:      in.Body,
				CreatedAt: now,
			}
			if err := posts.Create(&post); err != nil {
				return createOut{}, httpez.Internal(err)
			}

			return createOut{
				Message: "Post created successfully",
				Post: createdPost{
					ID:        post.ID,
					UserID:    post.UserID,
					Title:     post.Title,
					Body:      post.Body,
					CreatedAt: now.Format(time.RFC3339Nano),
				},
			}, nil
		},
	})

	// --- DELETE /posts/:postId ---
	type deleteOut struct {
		Message string `json:"message"`
		Changes int64  `json:"changes"`
	}

	httpez.Register[struct{}, deleteOut](ez, httpez.Action[struct{}, deleteOut]{
		Method: http.MethodDelete,
		Path:   "/posts/:postId",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, tx *gorm.DB, _ *struct{}) (deleteOut, error) {
			changes, err := repo.NewPostRepo(tx).Delete(c.Param("postId"))
			if err != nil {
				return deleteOut{}, httpez.Internal(err)
			}
			if changes == 0 {
				return deleteOut{}, httpez.NotFound(msgPostNotFound)
			}
			return deleteOut{Message: "Post deleted successfully", Changes: changes}, nil
		},
	})
}
