package catalog

import (
	"log"
	"net/http"

	"wayfare/globals"
	"wayfare/utils"

	"github.com/julienschmidt/httprouter"
)

// ReloadHandler re-reads the POI dataset and swaps the active snapshot.
// Admin only. POST /api/catalog/reload
func ReloadHandler(store *Store) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		roles, _ := r.Context().Value(globals.RoleKey).([]string)
		if !hasRole(roles, "admin") {
			utils.RespondWithError(w, http.StatusForbidden, "Admin role required")
			return
		}

		c, err := store.Reload()
		if err != nil {
			log.Printf("catalog: reload failed: %v", err)
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to reload catalog")
			return
		}
		utils.RespondWithJSON(w, http.StatusOK, utils.M{
			"message": "Catalog reloaded",
			"count":   c.Len(),
		})
	}
}

func hasRole(roles []string, want string) bool {
	for _, role := range roles {
		if role == want {
			return true
		}
	}
	return false
}
