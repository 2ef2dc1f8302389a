package echoapi

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/RedSolnishko/Digital-Teaching-Assistant/core/assignment"
	"github.com/RedSolnishko/Digital-Teaching-Assistant/core/teacher"
	"github.com/RedSolnishko/Digital-Teaching-Assistant/core/topic"
	"github.com/RedSolnishko/Digital-Teaching-Assistant/core/user"
)

type topicApi struct {
	svc       *topic.Service
	assignSvc *assignment.Service
	usrSvc    *user.Service
	validate  *validator.Validate
}

func registerTopicAPI(g *echo.Group, jwt echo.MiddlewareFunc, deps ServerDeps) {
	api := topicApi{
		svc:       deps.TopicSvc,
		assignSvc: deps.AssignmentSvc,
		usrSvc:    deps.UserSvc,
		validate:  deps.Validate,
	}

	tg := g.Group("/topics")

	// reads are public
	tg.GET("", api.query)
	tg.GET("/:id", api.retrieve)

	// writes are admin only
	tg.POST("", api.create, jwt, adminMiddleware(api.usrSvc))
	tg.PUT("/:id", api.update, jwt, adminMiddleware(api.usrSvc))

	// learner endpoints
	tg.GET("/:id/task", api.generateTask, jwt)
	tg.POST("/:id/submit", api.submitAnswer, jwt)
}

// Handlers

func (api *topicApi) query(ctx echo.Context) error {
	topics, err := api.svc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying topics")
	}
	return ctx.JSON(http.StatusOK, topics)
}

func (api *topicApi) retrieve(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return errHttpNotFound
	}

	tpc, err := api.svc.GetByID(id)
	if err != nil {
		if errors.Cause(err) == topic.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "finding topic by ID")
	}
	return ctx.JSON(http.StatusOK, tpc)
}

func (api *topicApi) create(ctx echo.Context) error {
	var data topic.NewTopic
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewTopic")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	tpc, err := api.svc.Create(data)
	if err != nil {
		if errors.Cause(err) == teacher.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "creating topic")
	}
	return ctx.JSON(http.StatusCreated, tpc)
}

func (api *topicApi) update(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return errHttpNotFound
	}

	var data topic.UpdateTopic
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateTopic")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	tpc, err := api.svc.Update(id, data)
	if err != nil {
		if errors.Cause(err) == topic.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "updating topic")
	}
	return ctx.JSON(http.StatusOK, tpc)
}

func (api *topicApi) generateTask(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return err
	}

	topicID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return errHttpNotFound
	}

	gt, err := api.assignSvc.GetOrGenerate(claims.UserID, topicID)
	if err != nil {
		if errors.Cause(err) == topic.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "generating task")
	}
	return ctx.JSON(http.StatusOK, gt)
}

func (api *topicApi) submitAnswer(ctx echo.Context) error {
	if _, err := getContextClaims(ctx); err != nil {
		return err
	}

	topicID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return errHttpNotFound
	}

	var data SubmitAnswerRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to SubmitAnswerRequest")
	}

	res, err := api.assignSvc.Grade(topicID, data.Answer)
	if err != nil {
		if errors.Cause(err) == topic.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "grading answer")
	}
	return ctx.JSON(http.StatusOK, res)
}

type SubmitAnswerRequest struct {
	Answer string `json:"answer"`
}
