package groups

import (
	"context"
	"net/http"
	"os"
	"time"

	"wayfare/db"
	"wayfare/models"
	"wayfare/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
)

// GET /api/groups/:groupid/invite
// Responds with a PNG QR code of the group's join URL.
func InviteQR(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	groupID := ps.ByName("groupid")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var group models.Group
	if err := db.GroupsCollection.FindOne(ctx, bson.M{"group_id": groupID}).Decode(&group); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Group not found")
		return
	}

	base := os.Getenv("PUBLIC_BASE_URL")
	if base == "" {
		base = "http://localhost:8080"
	}
	joinURL := base + "/api/groups/" + group.GroupID + "/join"

	png, err := qrcode.Encode(joinURL, qrcode.Medium, 256)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
