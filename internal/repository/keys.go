package repository

import "strings"

const (
	openGamesKey     = "games:open"
	finishedGamesKey = "games:finished"
	leaderboardKey   = "leaderboard"
	activeSeasonKey  = "season:active"
)

func gameKey(id string) string {
	return "game:" + id
}

func movesKey(gameID string) string {
	return "game:" + gameID + ":moves"
}

func gameLockKey(gameID string) string {
	return "lock:game:" + gameID
}

func playerKey(id string) string {
	return "player:" + id
}

func nicknameKey(nickname string) string {
	return "player:nickname:" + strings.ToLower(nickname)
}

func emailKey(email string) string {
	return "player:email:" + strings.ToLower(email)
}

func seasonKey(id string) string {
	return "season:" + id
}

func seasonNameKey(nameSlug string) string {
	return "season:name:" + nameSlug
}

func seasonPlayersKey(seasonID string) string {
	return "season:" + seasonID + ":players"
}
