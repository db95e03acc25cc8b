// Package gamesettings applies launcher options to the game's own files:
// the update_time entry of settings.txt, the intro movies folder and the
// per-user map/gfx/music caches.
package gamesettings
