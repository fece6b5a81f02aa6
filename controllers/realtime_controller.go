package controllers

import (
	"net/http"
	"time"

	"backend/models"
	"backend/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"gorm.io/gorm"
)

type RealtimeController struct {
	RT *services.RealtimeHub
	DB *gorm.DB
}

func NewRealtimeController(rt *services.RealtimeHub, db *gorm.DB) *RealtimeController {
	return &RealtimeController{RT: rt, DB: db}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true }, // tighten behind a proxy if needed
}

// GET /realtime/alerts (websocket)
func (rc *RealtimeController) AlertsWS(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	cl := &services.WSClient{UserID: userID, Conn: conn}
	rc.RT.Register(cl)

	// ping to keep connections alive through some proxies
	go func() {
		t := time.NewTicker(25 * time.Second)
		defer t.Stop()
		for range t.C {
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				rc.RT.Unregister(cl)
				return
			}
		}
	}()

	// read loop ends on client close/error
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			rc.RT.Unregister(cl)
			return
		}
	}
}

// GET /realtime/alerts/recent
func (rc *RealtimeController) RecentAlerts(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var alerts []models.Alert
	if err := rc.DB.WithContext(c.Request.Context()).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(20).
		Find(&alerts).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": alerts})
}
