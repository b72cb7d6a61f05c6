// AmberWatch is a personal electricity price alerting service for Amber
// Electric subscribers: a web form for thresholds and quiet hours, and a
// periodic monitor that emails alerts when live prices cross them.
package main
