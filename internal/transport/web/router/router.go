package router

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jbeshir/community-feed/internal/transport/web/controller"
)

// Controllers holds the handlers served by the router.
type Controllers struct {
	Feed        controller.FeedGet
	Engagement  controller.EngagementOperationCreate
	Counts      controller.AggregateCountsGet
	HotComments controller.HotCommentsGet
	Jobs        controller.JobRun
	RSS         controller.RSS
}

func MakeRouter(
	controllers Controllers,
	authMiddleware func(http.Handler) http.Handler,
	engagementLimiter *UserRateLimiter,
) (http.Handler, error) {
	r := mux.NewRouter()
	r.Use(corsMiddleware)
	r.Use(authMiddleware)

	r.Handle("/v1/feed", requireAuthMiddleware(controllers.Feed)).
		Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/engagement", requireAuthMiddleware(engagementLimiter.Middleware(controllers.Engagement))).
		Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/engagement/counts", controllers.Counts).
		Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/posts/{post_id}/hot_comments", controllers.HotComments).
		Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/jobs/{job}", requireSchedulerMiddleware(controllers.Jobs)).
		Methods(http.MethodPost)

	r.Handle(controllers.RSS.FeedPath, controllers.RSS).
		Methods(http.MethodGet)

	r.Handle("/metrics", promhttp.Handler()).
		Methods(http.MethodGet)

	return r, nil
}
