package rest

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thinkful-ei23/jon-noteful-v3/internal/common"
	"github.com/thinkful-ei23/jon-noteful-v3/internal/server/services"
)

// signupInput checks presence of the required fields, then that every
// supplied field is a string.
func signupInput(b body) (services.RegisterInput, error) {
	for _, field := range []string{"username", "password"} {
		if !b.has(field) {
			return services.RegisterInput{}, common.Validation(field, fmt.Sprintf("Missing '%s' in request body", field))
		}
	}

	values := map[string]string{}
	for _, field := range []string{"username", "password", "fullname"} {
		if !b.has(field) {
			continue
		}
		s, ok := b.str(field)
		if !ok {
			return services.RegisterInput{}, common.Validation(field, "Incorrect field type: expected string")
		}
		values[field] = s
	}

	return services.RegisterInput{
		Username: values["username"],
		Password: values["password"],
		Fullname: values["fullname"],
	}, nil
}

func (h *Handler) createUser(c *gin.Context) {
	b, err := readBody(c)
	if err != nil {
		h.writeError(c, err)
		return
	}

	in, err := signupInput(b)
	if err != nil {
		h.writeError(c, err)
		return
	}

	user, err := h.Users.Register(c.Request.Context(), in)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.Header("Location", c.Request.URL.Path+"/"+user.ID)
	c.JSON(http.StatusCreated, user)
}
