package http

import (
	"encoding/json"
	nethttp "net/http"
	"strconv"
	"strings"
)

func writeJSON(w nethttp.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w nethttp.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func queryInt(r *nethttp.Request, key string, def int) int {
	if v, err := strconv.Atoi(r.URL.Query().Get(key)); err == nil && v >= 0 {
		return v
	}
	return def
}

func queryStr(r *nethttp.Request, key string) string {
	return strings.TrimSpace(r.URL.Query().Get(key))
}
