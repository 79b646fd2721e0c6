package chat

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"wayfare/db"
	"wayfare/middleware"
	"wayfare/models"
	"wayfare/utils"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const historyLimit = 50

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// inboundPayload represents what clients send us over the socket.
type inboundPayload struct {
	Action  string `json:"action"` // "chat"
	Content string `json:"content,omitempty"`
}

func isGroupMember(ctx context.Context, groupID, userID string) bool {
	cnt, err := db.GroupsCollection.CountDocuments(ctx, bson.M{
		"group_id": groupID,
		"members":  bson.M{"$in": []string{userID}},
	})
	return err == nil && cnt > 0
}

// WebSocketHandler upgrades the connection and joins the group room.
// GET /ws/chat/:groupid
func WebSocketHandler(hub *Hub) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		groupID := ps.ByName("groupid")

		// Browsers cannot set headers on websocket dials; accept the token
		// as a query parameter as well.
		tokenString := r.Header.Get("Authorization")
		if tokenString == "" {
			tokenString = "Bearer " + r.URL.Query().Get("token")
		}
		claims, err := middleware.ValidateJWT(tokenString)
		if err != nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()
		if !isGroupMember(ctx, groupID, claims.UserID) {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("upgrade:", err)
			return
		}
		client := &Client{
			Conn:   conn,
			Send:   make(chan []byte, 256),
			Room:   groupID,
			UserID: claims.UserID,
		}

		history := recentHistory(groupID)

		hub.register <- client
		go writePump(client, history)
		go readPump(client, hub, claims.Username)
	}
}

// recentHistory returns the group's last messages, oldest first. Lookup
// failures degrade to an empty replay.
func recentHistory(groupID string) []models.Message {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(historyLimit)

	cur, err := db.MessagesCollection.Find(ctx, bson.M{"group_id": groupID}, opts)
	if err != nil {
		log.Println("history find:", err)
		return nil
	}
	defer cur.Close(ctx)

	var newestFirst []models.Message
	if err := cur.All(ctx, &newestFirst); err != nil {
		log.Println("history decode:", err)
		return nil
	}

	history := make([]models.Message, 0, len(newestFirst))
	for i := len(newestFirst) - 1; i >= 0; i-- {
		history = append(history, newestFirst[i])
	}
	return history
}

// writePump is the connection's only writer and the only receiver on Send.
// History goes out on the connection directly, before any live message, so
// the hub stays the sole goroutine sending on (and closing) Send.
func writePump(c *Client, history []models.Message) {
	defer c.Conn.Close()

	for _, msg := range history {
		data, err := json.Marshal(msg)
		if err != nil {
			continue
		}
		if err := c.Conn.WriteMessage(websocket.TextMessage, data); err != nil {
			return
		}
	}

	for msg := range c.Send {
		if err := c.Conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			break
		}
	}
}

func readPump(c *Client, hub *Hub, username string) {
	defer func() {
		hub.unregister <- c
		c.Conn.Close()
	}()

	for {
		_, raw, err := c.Conn.ReadMessage()
		if err != nil {
			break
		}

		var in inboundPayload
		if err := json.Unmarshal(raw, &in); err != nil {
			log.Println("invalid payload:", err)
			continue
		}
		if in.Action != "chat" || in.Content == "" {
			continue
		}

		msg := models.Message{
			MessageID:  uuid.NewString(),
			GroupID:    c.Room,
			SenderID:   c.UserID,
			SenderName: username,
			Content:    in.Content,
			Timestamp:  time.Now().Unix(),
		}
		if _, err := db.MessagesCollection.InsertOne(context.Background(), msg); err != nil {
			log.Printf("insert error: %v", err)
			continue
		}
		if out, err := json.Marshal(msg); err == nil {
			hub.Broadcast(c.Room, out)
		}
	}
}

// SendMessage persists a message and relays it to the group room.
// POST /api/messages/send/:groupid
func SendMessage(hub *Hub) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		tokenString := r.Header.Get("Authorization")
		claims, err := middleware.ValidateJWT(tokenString)
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, "Not logged in")
			return
		}
		groupID := ps.ByName("groupid")

		var input struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.Message == "" {
			utils.RespondWithError(w, http.StatusBadRequest, "Message is empty")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if !isGroupMember(ctx, groupID, claims.UserID) {
			utils.RespondWithError(w, http.StatusForbidden, "You are not a member of this group")
			return
		}

		msg := models.Message{
			MessageID:  uuid.NewString(),
			GroupID:    groupID,
			SenderID:   claims.UserID,
			SenderName: claims.Username,
			Content:    input.Message,
			Timestamp:  time.Now().Unix(),
		}
		if _, err := db.MessagesCollection.InsertOne(ctx, msg); err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Could not save message")
			return
		}

		if out, err := json.Marshal(msg); err == nil {
			hub.Broadcast(groupID, out)
		}

		utils.RespondWithJSON(w, http.StatusOK, utils.M{"status": "success"})
	}
}

// GetMessages returns a group's message history, oldest first.
// GET /api/messages/:groupid
func GetMessages(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	tokenString := r.Header.Get("Authorization")
	claims, err := middleware.ValidateJWT(tokenString)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Not logged in")
		return
	}
	groupID := ps.ByName("groupid")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if !isGroupMember(ctx, groupID, claims.UserID) {
		utils.RespondWithError(w, http.StatusForbidden, "You are not a member of this group")
		return
	}

	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})
	cur, err := db.MessagesCollection.Find(ctx, bson.M{"group_id": groupID}, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "DB error")
		return
	}
	defer cur.Close(ctx)

	var messages []models.Message
	if err := cur.All(ctx, &messages); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to decode messages")
		return
	}
	if messages == nil {
		messages = []models.Message{}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"group_id": groupID,
		"messages": messages,
	})
}
