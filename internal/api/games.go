package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bkuzmin/chess-game-backend/internal/dao"
	"github.com/bkuzmin/chess-game-backend/internal/render"
	"github.com/bkuzmin/chess-game-backend/internal/room"
	"github.com/bkuzmin/chess-game-backend/pkg/engine"
)

type GameApi struct {
	Rooms          *room.Manager
	GameRepository dao.GameRepository
}

func NewGameApi(rooms *room.Manager, gameRepo dao.GameRepository) *GameApi {
	return &GameApi{
		Rooms:          rooms,
		GameRepository: gameRepo,
	}
}

// Register wires the game routes onto the router.
func (g *GameApi) Register(r *gin.Engine) {
	r.POST("/api/game", g.CreateGame)
	r.GET("/api/game/:game_id", g.GetGame)
	r.POST("/api/game/:game_id/activate", g.ActivateSquare)
	r.POST("/api/game/:game_id/reset", g.ResetGame)
	r.GET("/api/game/:game_id/board.svg", g.BoardSVG)
	r.GET("/api/games/recent", g.RecentGames)
}

func (g *GameApi) session(ctx *gin.Context) (*room.Session, bool) {
	session, ok := g.Rooms.Get(ctx.Param("game_id"))
	if !ok {
		ctx.AbortWithStatus(http.StatusNotFound)
		return nil, false
	}
	return session, true
}

func (g *GameApi) CreateGame(ctx *gin.Context) {
	session := g.Rooms.Create()
	ctx.JSON(http.StatusOK, gin.H{
		"game_id": session.ID(),
		"state":   session.Snapshot(),
	})
}

func (g *GameApi) GetGame(ctx *gin.Context) {
	session, ok := g.session(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, session.Snapshot())
}

// X and Y are pointers so that file or rank 0 still binds as present.
type activateRequest struct {
	X *int `json:"x" binding:"required"`
	Y *int `json:"y" binding:"required"`
}

func (g *GameApi) ActivateSquare(ctx *gin.Context) {
	session, ok := g.session(ctx)
	if !ok {
		return
	}

	var req activateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	snap, err := session.Activate(*req.X, *req.Y)
	if err != nil {
		if errors.Is(err, engine.ErrOutOfBounds) {
			ctx.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}
	ctx.JSON(http.StatusOK, snap)
}

func (g *GameApi) ResetGame(ctx *gin.Context) {
	session, ok := g.session(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, session.Reset())
}

func (g *GameApi) BoardSVG(ctx *gin.Context) {
	session, ok := g.session(ctx)
	if !ok {
		return
	}
	ctx.Header("Content-Type", "image/svg+xml")
	ctx.Status(http.StatusOK)
	render.WriteBoardSVG(ctx.Writer, session.Snapshot())
}

func (g *GameApi) RecentGames(ctx *gin.Context) {
	limitStr := ctx.DefaultQuery("limit", "10")
	limit, err := strconv.ParseInt(limitStr, 10, 64)
	if err != nil || limit <= 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "limit should be a positive integer",
		})
		return
	}

	records, err := g.GameRepository.GetRecentGames(limit)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}
	ctx.JSON(http.StatusOK, records)
}
