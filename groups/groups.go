package groups

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"wayfare/db"
	"wayfare/globals"
	"wayfare/models"
	"wayfare/mq"
	"wayfare/utils"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const defaultMaxMembers = 50

func requestUserID(r *http.Request) string {
	userID, _ := r.Context().Value(globals.UserIDKey).(string)
	return userID
}

// POST /api/groups
func CreateGroup(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := requestUserID(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var input struct {
		Name        string `json:"group_name"`
		Type        string `json:"group_type"`
		Destination string `json:"destination_name"`
		Description string `json:"group_description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	input.Name = strings.TrimSpace(input.Name)
	input.Destination = strings.TrimSpace(input.Destination)
	if input.Name == "" || input.Destination == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Group name and destination are required")
		return
	}
	if input.Type != "Public" && input.Type != "Private" {
		utils.RespondWithError(w, http.StatusBadRequest, "Group type must be Public or Private")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := findOrCreateDestination(ctx, input.Destination); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to record destination")
		return
	}

	group := models.Group{
		GroupID:     uuid.NewString(),
		Name:        input.Name,
		Description: input.Description,
		Type:        input.Type,
		OwnerID:     userID,
		Destination: input.Destination,
		Members:     []string{userID},
		MaxMembers:  defaultMaxMembers,
		CreatedAt:   time.Now(),
	}

	if _, err := db.GroupsCollection.InsertOne(ctx, group); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error creating group")
		return
	}

	mq.Emit(r.Context(), mq.Event{
		Name:        "group-created",
		EntityID:    group.GroupID,
		Destination: group.Destination,
		UserID:      userID,
	})

	utils.RespondWithJSON(w, http.StatusCreated, group)
}

// GET /api/groups
func GetGroups(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	groups, err := utils.FindAndDecode[models.Group](ctx, db.GroupsCollection, bson.M{})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching groups")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, groups)
}

// POST /api/groups/:groupid/join
func JoinGroup(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := requestUserID(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	groupID := ps.ByName("groupid")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var group models.Group
	if err := db.GroupsCollection.FindOne(ctx, bson.M{"group_id": groupID}).Decode(&group); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Group not found")
		return
	}

	for _, m := range group.Members {
		if m == userID {
			utils.RespondWithError(w, http.StatusConflict, "Already a member of this group")
			return
		}
	}
	if len(group.Members) >= group.MaxMembers {
		utils.RespondWithError(w, http.StatusConflict, "Group is full")
		return
	}

	_, err := db.GroupsCollection.UpdateOne(ctx,
		bson.M{"group_id": groupID},
		bson.M{"$addToSet": bson.M{"members": userID}},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to join group")
		return
	}

	utils.SendResponse(w, http.StatusOK, nil, "Joined group", nil)
}

// POST /api/groups/:groupid/leave
func LeaveGroup(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := requestUserID(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	groupID := ps.ByName("groupid")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var group models.Group
	if err := db.GroupsCollection.FindOne(ctx, bson.M{"group_id": groupID}).Decode(&group); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Group not found")
		return
	}

	// Owners must delete their group instead of leaving it
	if group.OwnerID == userID {
		utils.RespondWithError(w, http.StatusConflict, "Owners must delete their group instead")
		return
	}

	_, err := db.GroupsCollection.UpdateOne(ctx,
		bson.M{"group_id": groupID},
		bson.M{"$pull": bson.M{"members": userID}},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to leave group")
		return
	}

	utils.SendResponse(w, http.StatusOK, nil, "Left group", nil)
}

// DELETE /api/groups/:groupid
func DeleteGroup(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := requestUserID(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	groupID := ps.ByName("groupid")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res, err := db.GroupsCollection.DeleteOne(ctx, bson.M{"group_id": groupID, "owner_id": userID})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete group")
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusForbidden, "You are not authorized to delete this group")
		return
	}

	utils.SendResponse(w, http.StatusOK, nil, "Group deleted", nil)
}

func findOrCreateDestination(ctx context.Context, name string) error {
	filter := bson.M{"destination_name": name}
	var existing models.Destination
	err := db.DestinationsCollection.FindOne(ctx, filter).Decode(&existing)
	if err == nil {
		return nil
	}
	if err != mongo.ErrNoDocuments {
		return err
	}
	_, err = db.DestinationsCollection.InsertOne(ctx, models.Destination{
		DestinationID: uuid.NewString(),
		Name:          name,
	})
	return err
}
