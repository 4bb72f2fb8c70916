package feed

import (
	"context"
	"log"
	"net/http"
	"sync"

	"forkful/db"
	"forkful/models"
	"forkful/utils"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// Hub tracks connected users for the live recipe feed. Followers of an
// author get a push when the author publishes.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*websocket.Conn
}

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

func NewHub() *Hub {
	return &Hub{clients: make(map[string]*websocket.Conn)}
}

// Serve upgrades the connection and parks it until the client goes away.
// The feed is one-directional; inbound frames are drained and dropped.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromContext(r.Context())
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("ws upgrade:", err)
		return
	}

	h.mu.Lock()
	if old, ok := h.clients[userID]; ok {
		old.Close()
	}
	h.clients[userID] = conn
	h.mu.Unlock()
	log.Println("feed connected:", userID)

	defer func() {
		h.mu.Lock()
		if h.clients[userID] == conn {
			delete(h.clients, userID)
		}
		h.mu.Unlock()
		conn.Close()
		log.Println("feed disconnected:", userID)
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (h *Hub) send(userID string, payload interface{}) {
	h.mu.RLock()
	conn, ok := h.clients[userID]
	h.mu.RUnlock()
	if ok {
		conn.WriteJSON(payload)
	}
}

// NotifyRecipePublished pushes a "recipe" event to every connected follower
// of the author.
func (h *Hub) NotifyRecipePublished(ctx context.Context, authorID string, recipe models.RecipeShortView) {
	cursor, err := db.FollowingsCollection.Find(ctx, bson.M{"follows": authorID})
	if err != nil {
		return
	}
	defer cursor.Close(ctx)

	payload := map[string]interface{}{
		"type":   "recipe",
		"author": authorID,
		"recipe": recipe,
	}
	for cursor.Next(ctx) {
		var follower models.UserFollow
		if err := cursor.Decode(&follower); err != nil {
			continue
		}
		h.send(follower.UserID, payload)
	}
}
