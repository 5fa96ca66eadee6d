package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/yashtrivedi1234/rinku-hotel-taste-of-home/pkg/resp"
	"github.com/yashtrivedi1234/rinku-hotel-taste-of-home/services"
)

type OfferController struct{ Svc *services.OfferService }

func NewOfferController(s *services.OfferService) *OfferController { return &OfferController{Svc: s} }

// GET /offers
func (h *OfferController) List(c *gin.Context) {
	resp.OK(c, gin.H{
		"offers":    h.Svc.List(),
		"countdown": h.Svc.Countdown(time.Now()),
	})
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// GET /offers/countdown - streams the end-of-day countdown once per second
// until the client disconnects or the day rolls over.
func (h *OfferController) Countdown(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logrus.WithError(err).Warn("countdown: websocket upgrade failed")
		return
	}
	defer conn.Close()

	// drain incoming frames so close messages are noticed
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		cd := h.Svc.Countdown(time.Now())
		if err := conn.WriteJSON(cd); err != nil {
			return
		}
		if cd.Hours == 0 && cd.Minutes == 0 && cd.Seconds == 0 && cd.Days == 0 {
			return
		}
		select {
		case <-c.Request.Context().Done():
			return
		case <-ticker.C:
		}
	}
}
