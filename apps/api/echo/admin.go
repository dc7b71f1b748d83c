package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"eduquest/core"
	"eduquest/core/school"
)

var errConfirmRequired = errors.New("deletion requires confirmation")

type adminApi struct {
	deps ServerDeps
}

func registerAdminAPI(g *echo.Group, jwt echo.MiddlewareFunc, deps ServerDeps) {
	api := adminApi{deps: deps}

	ag := g.Group("/admin", jwt, adminMiddleware())

	ag.GET("/overview", api.overview)
	ag.POST("/insights", api.insights)

	ag.GET("/teachers", api.queryTeachers)
	ag.POST("/teachers", api.createTeacher)
	ag.PUT("/teachers/:id", api.updateTeacher)
	ag.DELETE("/teachers/:id", api.destroyTeacher)

	ag.GET("/students", api.queryStudents)
	ag.POST("/students", api.createStudent)
	ag.PUT("/students/:id", api.updateStudent)
	ag.DELETE("/students/:id", api.destroyStudent)

	ag.GET("/classes", api.queryClasses)
	ag.POST("/classes", api.createClass)
	ag.PUT("/classes/:id", api.updateClass)
	ag.DELETE("/classes/:id", api.destroyClass)
}

// confirmDelete enforces the explicit confirmation step the console shows
// before any record is removed.
func confirmDelete(ctx echo.Context) error {
	if ctx.QueryParam("confirm") != "true" {
		return core.NewValidationError(errConfirmRequired, core.FieldError{
			Field: "confirm",
			Error: errConfirmRequired.Error(),
		})
	}
	return nil
}

// Overview

func (api *adminApi) overview(ctx echo.Context) error {
	stats, err := api.deps.SchoolSvc.Overview()
	if err != nil {
		return errors.Wrap(err, "computing overview stats")
	}
	return ctx.JSON(http.StatusOK, stats)
}

func (api *adminApi) insights(ctx echo.Context) error {
	insight, err := api.deps.InsightSvc.AnalyzeStats(ctx.Request().Context(), school.PerformanceSeries)
	if err != nil {
		return errors.Wrap(err, "analyzing performance stats")
	}
	return ctx.JSON(http.StatusOK, InsightResponse{Insight: insight})
}

// Teachers

func (api *adminApi) queryTeachers(ctx echo.Context) error {
	teachers, err := api.deps.SchoolSvc.Teachers()
	if err != nil {
		return errors.Wrap(err, "querying teachers")
	}
	return ctx.JSON(http.StatusOK, teachers)
}

func (api *adminApi) createTeacher(ctx echo.Context) error {
	var data school.NewTeacher
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewTeacher")
	}
	if err := data.Validate(api.deps.Validate); err != nil {
		return err
	}

	t, err := api.deps.SchoolSvc.CreateTeacher(data)
	if err != nil {
		return errors.Wrap(err, "creating teacher")
	}
	return ctx.JSON(http.StatusCreated, t)
}

func (api *adminApi) updateTeacher(ctx echo.Context) error {
	var data school.UpdateTeacher
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateTeacher")
	}
	if err := data.Validate(api.deps.Validate); err != nil {
		return err
	}

	t, err := api.deps.SchoolSvc.UpdateTeacher(ctx.Param("id"), data)
	if err != nil {
		return errors.Wrap(err, "updating teacher")
	}
	return ctx.JSON(http.StatusOK, t)
}

func (api *adminApi) destroyTeacher(ctx echo.Context) error {
	if err := confirmDelete(ctx); err != nil {
		return err
	}
	if err := api.deps.SchoolSvc.DeleteTeacher(ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting teacher")
	}
	return ctx.JSON(http.StatusOK, SuccessResponse{Success: "Teacher deleted."})
}

// Students

func (api *adminApi) queryStudents(ctx echo.Context) error {
	students, err := api.deps.SchoolSvc.Students()
	if err != nil {
		return errors.Wrap(err, "querying students")
	}

	rows := make([]StudentRow, 0, len(students))
	for _, s := range students {
		rows = append(rows, StudentRow{
			Student:   s,
			ClassName: api.deps.SchoolSvc.ResolveClassName(s.ClassID),
		})
	}
	return ctx.JSON(http.StatusOK, rows)
}

func (api *adminApi) createStudent(ctx echo.Context) error {
	var data school.NewStudent
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewStudent")
	}
	if err := data.Validate(api.deps.Validate); err != nil {
		return err
	}

	s, err := api.deps.SchoolSvc.CreateStudent(data)
	if err != nil {
		return errors.Wrap(err, "creating student")
	}
	return ctx.JSON(http.StatusCreated, s)
}

func (api *adminApi) updateStudent(ctx echo.Context) error {
	var data school.UpdateStudent
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateStudent")
	}
	if err := data.Validate(api.deps.Validate); err != nil {
		return err
	}

	s, err := api.deps.SchoolSvc.UpdateStudent(ctx.Param("id"), data)
	if err != nil {
		return errors.Wrap(err, "updating student")
	}
	return ctx.JSON(http.StatusOK, s)
}

func (api *adminApi) destroyStudent(ctx echo.Context) error {
	if err := confirmDelete(ctx); err != nil {
		return err
	}
	if err := api.deps.SchoolSvc.DeleteStudent(ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting student")
	}
	return ctx.JSON(http.StatusOK, SuccessResponse{Success: "Student deleted."})
}

// Classes

func (api *adminApi) queryClasses(ctx echo.Context) error {
	classes, err := api.deps.SchoolSvc.Classes()
	if err != nil {
		return errors.Wrap(err, "querying classes")
	}

	rows := make([]ClassRow, 0, len(classes))
	for _, c := range classes {
		rows = append(rows, ClassRow{
			Class:       c,
			TeacherName: api.deps.SchoolSvc.ResolveTeacherName(c.TeacherID),
		})
	}
	return ctx.JSON(http.StatusOK, rows)
}

func (api *adminApi) createClass(ctx echo.Context) error {
	var data school.NewClass
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewClass")
	}
	if err := data.Validate(api.deps.Validate); err != nil {
		return err
	}

	c, err := api.deps.SchoolSvc.CreateClass(data)
	if err != nil {
		return errors.Wrap(err, "creating class")
	}
	return ctx.JSON(http.StatusCreated, c)
}

func (api *adminApi) updateClass(ctx echo.Context) error {
	var data school.UpdateClass
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateClass")
	}
	if err := data.Validate(api.deps.Validate); err != nil {
		return err
	}

	c, err := api.deps.SchoolSvc.UpdateClass(ctx.Param("id"), data)
	if err != nil {
		return errors.Wrap(err, "updating class")
	}
	return ctx.JSON(http.StatusOK, c)
}

func (api *adminApi) destroyClass(ctx echo.Context) error {
	if err := confirmDelete(ctx); err != nil {
		return err
	}
	if err := api.deps.SchoolSvc.DeleteClass(ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting class")
	}
	return ctx.JSON(http.StatusOK, SuccessResponse{Success: "Class deleted."})
}
