package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	api_middleware "github.com/guessdle/guessdle/api/middleware"
	"github.com/guessdle/guessdle/internal/game"
)

const INVALID_REQUEST = "invalid request"

var GameService *game.GameService

func RegisterGameRoutes(g *echo.Group, jwtMiddleware echo.MiddlewareFunc) {
	g.GET("", ListGamesHandler)
	g.GET("/:id", GetGameHandler)
	g.POST("", CreateGameHandler, jwtMiddleware)
	g.PUT("/:id", UpdateGameHandler, jwtMiddleware)
	g.POST("/:id/publish", PublishGameHandler, jwtMiddleware)
	g.POST("/:id/answers", AddAnswerHandler, jwtMiddleware)
	g.GET("/:id/answers", ListAnswersHandler, jwtMiddleware)
}

func ListGamesHandler(c echo.Context) error {
	games, err := GameService.ListPublished()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"games": games})
}

func GetGameHandler(c echo.Context) error {
	g, err := GameService.GetGame(c.Param("id"))
	if err != nil {
		return err
	}
	if !g.IsPublished {
		return echo.NewHTTPError(http.StatusNotFound, "game not found")
	}
	return c.JSON(http.StatusOK, echo.Map{"game": g})
}

func CreateGameHandler(c echo.Context) error {
	var r game.GameRequest
	if err := c.Bind(&r); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	g, err := GameService.CreateGame(api_middleware.UserID(c), &r)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, echo.Map{"game": g})
}

func UpdateGameHandler(c echo.Context) error {
	var r game.GameRequest
	if err := c.Bind(&r); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	g, err := GameService.UpdateGame(api_middleware.UserID(c), c.Param("id"), &r)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"game": g})
}

func PublishGameHandler(c echo.Context) error {
	g, err := GameService.PublishGame(api_middleware.UserID(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"game": g})
}

func AddAnswerHandler(c echo.Context) error {
	var r game.AnswerRequest
	if err := c.Bind(&r); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	answer, err := GameService.AddAnswer(api_middleware.UserID(c), c.Param("id"), &r)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, echo.Map{"answer": answer})
}

// ListAnswersHandler is creator-only: the answer list spoils the puzzle.
func ListAnswersHandler(c echo.Context) error {
	answers, err := GameService.ListAnswers(api_middleware.UserID(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"answers": answers})
}
