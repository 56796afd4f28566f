// Package services holds the CoordiNet use cases built on the datastore:
// signing in and out, registering for festivals and sub-events, organizer
// actions and the dashboard views.
//
// Services read the signed-in user from the context (see package session);
// front-ends attach it before calling in. The datastore itself never checks
// who is calling.
package services
