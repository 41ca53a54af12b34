package userctx

import "context"

// Context key type
type contextKey string

const actorKey contextKey = "actor"
const clientIPKey contextKey = "client_ip"

// AnonymousActor is returned when no actor has been authenticated
const AnonymousActor = "anonymous"

// SetActor adds the authenticated actor to request context
func SetActor(ctx context.Context, actor string) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

// GetActor retrieves the actor from request context
func GetActor(ctx context.Context) string {
	actor, ok := ctx.Value(actorKey).(string)
	if !ok || actor == "" {
		return AnonymousActor
	}
	return actor
}

// SetClientIP adds the client IP address to request context
func SetClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, clientIPKey, ip)
}

// GetClientIP retrieves the client IP address from request context
func GetClientIP(ctx context.Context) string {
	if ip, ok := ctx.Value(clientIPKey).(string); ok {
		return ip
	}
	return ""
}
