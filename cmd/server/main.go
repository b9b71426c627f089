package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/bkuzmin/chess-game-backend/internal/api"
	"github.com/bkuzmin/chess-game-backend/internal/config"
	"github.com/bkuzmin/chess-game-backend/internal/dao"
	"github.com/bkuzmin/chess-game-backend/internal/db"
	"github.com/bkuzmin/chess-game-backend/internal/room"
)

func main() {
	cfg, err := config.InitConfig()
	if err != nil {
		panic(err)
	}

	dbClient, err := db.NewDbClient(cfg)
	if err != nil {
		panic(err)
	}
	defer dbClient.Close()

	gameRepo := dao.NewGameRepository(dbClient)
	rooms := room.NewManager(gameRepo)
	gameApi := api.NewGameApi(rooms, gameRepo)

	r := gin.Default()
	gameApi.Register(r)

	addr := cfg.Server.Host + ":" + cfg.Server.Port
	log.Printf("listening on %s", addr)
	if err := r.Run(addr); err != nil {
		panic(err)
	}
}
