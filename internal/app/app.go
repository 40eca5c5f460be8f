package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jbeshir/community-feed/internal/command"
	"github.com/jbeshir/community-feed/internal/datasources"
	"github.com/jbeshir/community-feed/internal/datasources/breaker"
	"github.com/jbeshir/community-feed/internal/datasources/mysql"
	"github.com/jbeshir/community-feed/internal/datasources/pinecone"
	"github.com/jbeshir/community-feed/internal/datasources/redis"
	"github.com/jbeshir/community-feed/internal/datasources/voyageai"
	"github.com/jbeshir/community-feed/internal/domain"
	"github.com/jbeshir/community-feed/internal/transport/web/controller"
	"github.com/jbeshir/community-feed/internal/transport/web/router"
	"github.com/jbeshir/community-feed/internal/transport/web/server"
)

// Job names accepted by POST /v1/jobs/{job} and cmd/run-job.
const (
	JobFlush                  = "flush"
	JobRefreshHotComments     = "refresh_hot_comments"
	JobRefreshInterestVectors = "refresh_interest_vectors"
	JobEmbedPosts             = "embed_posts"
)

type Component interface {
	Run(ctx context.Context) error
}

// Datasources holds the stores the commands are built over.
type Datasources struct {
	Repository       *mysql.Repository
	Store            *redis.Store
	Similarity       datasources.SimilarityRepository
	QueryEmbedder    datasources.Embedder
	DocumentEmbedder datasources.Embedder
}

// Commands holds every command the HTTP surface and jobs run.
type Commands struct {
	GetFeed                *command.GetFeed
	BufferEngagement       *command.BufferEngagement
	GetAggregateCounts     *command.GetAggregateCounts
	GetHotComments         *command.GetHotComments
	ListTrendingPosts      *command.ListTrendingPosts
	FlushEngagement        *command.FlushEngagement
	RefreshHotComments     *command.RefreshHotComments
	RefreshInterestVectors *command.RefreshInterestVectors
	EmbedPosts             *command.EmbedPosts
}

func Setup(ctx context.Context) ([]Component, error) {
	ds, err := SetupDatasources(ctx)
	if err != nil {
		return nil, err
	}
	cmds := NewCommands(ds)

	authMiddleware, err := setupAuthMiddleware(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up auth middleware: %w", err)
	}

	httpRouter, err := router.MakeRouter(
		router.Controllers{
			Feed:        controller.FeedGet{Command: cmds.GetFeed},
			Engagement:  controller.EngagementOperationCreate{Command: cmds.BufferEngagement},
			Counts:      controller.AggregateCountsGet{Command: cmds.GetAggregateCounts},
			HotComments: controller.HotCommentsGet{Command: cmds.GetHotComments},
			Jobs:        controller.JobRun{Jobs: Jobs(cmds)},
			RSS: controller.RSS{
				FeedBaseURL:     MustGetEnvAsString(ctx, "RSS_FEED_BASE_URL"),
				FeedPath:        "/rss",
				FeedAuthorName:  MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_NAME"),
				FeedAuthorEmail: MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_EMAIL"),
				Command:         cmds.ListTrendingPosts,
				CacheMaxAge:     MustGetEnvAsDuration(ctx, "RSS_FEED_CACHE_MAX_AGE"),
			},
		},
		authMiddleware,
		router.NewUserRateLimiter(MustGetEnvAsInt(ctx, "ENGAGEMENT_RATE_PER_MINUTE")),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to create HTTP router: %w", err)
	}

	return []Component{
		&server.Server{
			TLSDisabled:       MustGetEnvAsBoolean(ctx, "HTTP_TLS_DISABLED"),
			TLSDisabledPort:   MustGetEnvAsInt(ctx, "PORT"),
			AutocertHostnames: MustGetEnvAsStrings(ctx, "HTTP_AUTOCERT_HOSTNAMES"),
			Router:            httpRouter,
		},
	}, nil
}

// SetupDatasources connects to every store named by the environment.
func SetupDatasources(ctx context.Context) (Datasources, error) {
	db, err := mysql.Connect(ctx, MustGetEnvAsString(ctx, "MYSQL_URI"))
	if err != nil {
		return Datasources{}, fmt.Errorf("connecting to MySQL: %w", err)
	}
	repo := mysql.New(db)

	redisClient, err := redis.Connect(ctx, MustGetEnvAsString(ctx, "REDIS_ADDR"))
	if err != nil {
		return Datasources{}, fmt.Errorf("connecting to Redis: %w", err)
	}
	storeConfig := redis.DefaultConfig()
	storeConfig.KeyPrefix = GetEnvAsStringOr("REDIS_KEY_PREFIX", "")

	similarity, err := setupSimilarityRepository(ctx, repo)
	if err != nil {
		return Datasources{}, fmt.Errorf("setting up similarity repository: %w", err)
	}

	queryEmbedder, documentEmbedder, err := setupEmbedders(ctx)
	if err != nil {
		return Datasources{}, fmt.Errorf("setting up embedder: %w", err)
	}

	return Datasources{
		Repository:       repo,
		Store:            redis.New(redisClient, storeConfig),
		Similarity:       similarity,
		QueryEmbedder:    queryEmbedder,
		DocumentEmbedder: documentEmbedder,
	}, nil
}

// NewCommands wires the commands over ds with the default tunables.
func NewCommands(ds Datasources) Commands {
	repo, store := ds.Repository, ds.Store

	recall := command.NewRecallPosts(
		repo,
		repo,
		ds.QueryEmbedder,
		ds.Similarity,
		repo,
		store,
		DefaultRecallPostsConfig(),
	)
	rank := command.NewRankPosts(repo, store, domain.DefaultRankingConfig())
	updateInterest := command.NewUpdateInterestVector(
		repo,
		ds.QueryEmbedder,
		repo,
		repo,
		domain.DefaultInterestVectorConfig(),
	)

	return Commands{
		GetFeed: command.NewGetFeed(recall, rank, repo, store, store, DefaultGetFeedConfig()),
		BufferEngagement: command.NewBufferEngagement(
			store,
			repo,
			repo,
			repo,
			DefaultBufferEngagementConfig(),
		),
		GetAggregateCounts: command.NewGetAggregateCounts(store, store, repo),
		GetHotComments:     command.NewGetHotComments(repo, store, DefaultHotCommentsConfig()),
		ListTrendingPosts:  command.NewListTrendingPosts(repo, repo, DefaultListTrendingPostsConfig()),
		FlushEngagement: command.NewFlushEngagement(
			store,
			repo,
			repo,
			store,
			DefaultFlushEngagementConfig(),
		),
		RefreshHotComments: command.NewRefreshHotComments(store, repo, store, DefaultHotCommentsConfig()),
		RefreshInterestVectors: command.NewRefreshInterestVectors(
			repo,
			updateInterest,
			DefaultRefreshInterestVectorsConfig(),
		),
		EmbedPosts: command.NewEmbedPosts(
			repo,
			ds.DocumentEmbedder,
			ds.Similarity,
			repo,
			DefaultEmbedPostsConfig(),
		),
	}
}

// Jobs maps each background job name to its runner.
func Jobs(cmds Commands) map[string]controller.JobRunner {
	return map[string]controller.JobRunner{
		JobFlush: controller.CommandJob[command.FlushEngagementRequest, command.FlushEngagementResult](
			cmds.FlushEngagement,
			func(batchSize int) command.FlushEngagementRequest {
				return command.FlushEngagementRequest{BatchSize: batchSize}
			},
		),
		JobRefreshHotComments: controller.CommandJob[command.RefreshHotCommentsRequest, command.RefreshHotCommentsResult](
			cmds.RefreshHotComments,
			func(batchSize int) command.RefreshHotCommentsRequest {
				return command.RefreshHotCommentsRequest{MaxPosts: batchSize}
			},
		),
		JobRefreshInterestVectors: controller.CommandJob[
			command.RefreshInterestVectorsRequest, command.RefreshInterestVectorsResult,
		](
			cmds.RefreshInterestVectors,
			func(batchSize int) command.RefreshInterestVectorsRequest {
				return command.RefreshInterestVectorsRequest{MaxUsers: batchSize}
			},
		),
		JobEmbedPosts: controller.CommandJob[command.EmbedPostsRequest, command.EmbedPostsResult](
			cmds.EmbedPosts,
			func(batchSize int) command.EmbedPostsRequest {
				return command.EmbedPostsRequest{MaxPosts: batchSize}
			},
		),
	}
}

func setupSimilarityRepository(
	ctx context.Context, repo *mysql.Repository,
) (datasources.SimilarityRepository, error) {
	switch driver := MustGetEnvAsString(ctx, "SIMILARITY_DRIVER"); driver {
	case "null":
		return datasources.NullSimilarityRepository{}, nil
	case "mysql_scan":
		return breaker.NewSimilarityRepository(
			mysql.NewVectorScan(repo, DefaultVectorScanWindow),
			DefaultSimilarityBreakerConfig(),
		), nil
	case "pinecone":
		client, err := pinecone.NewClient(
			ctx,
			MustGetEnvAsString(ctx, "PINECONE_API_KEY"),
			MustGetEnvAsString(ctx, "PINECONE_INDEX_NAME"),
		)
		if err != nil {
			return nil, fmt.Errorf("connecting to pinecone: %w", err)
		}
		return breaker.NewSimilarityRepository(client, DefaultSimilarityBreakerConfig()), nil
	default:
		return nil, fmt.Errorf("unknown similarity driver [%s]", driver)
	}
}

// setupEmbedders returns the embedder for user profile text and the one for
// post text. VoyageAI embeds them with different input types.
func setupEmbedders(ctx context.Context) (query, document datasources.Embedder, err error) {
	switch driver := MustGetEnvAsString(ctx, "EMBEDDER_DRIVER"); driver {
	case "null":
		return datasources.NullEmbedder{}, datasources.NullEmbedder{}, nil
	case "voyageai":
		client := voyageai.NewClient(
			MustGetEnvAsString(ctx, "VOYAGEAI_API_KEY"),
			MustGetEnvAsString(ctx, "VOYAGEAI_MODEL"),
			"query",
		)
		return client, client.WithInputType("document"), nil
	default:
		return nil, nil, fmt.Errorf("unknown embedder driver [%s]", driver)
	}
}

func setupAuthMiddleware(ctx context.Context) (func(http.Handler) http.Handler, error) {
	validators := []router.AuthValidator{
		router.NewSchedulerValidator(GetEnvAsStringOr("SCHEDULER_TOKEN_SHA256", "")),
	}

	for _, driver := range MustGetEnvAsStrings(ctx, "AUTH_DRIVERS") {
		switch driver {
		case "auth0":
			v, err := router.NewAuth0Validator(
				MustGetEnvAsString(ctx, "AUTH0_DOMAIN"),
				MustGetEnvAsString(ctx, "AUTH0_AUDIENCE"),
			)
			if err != nil {
				return nil, fmt.Errorf("creating Auth0 validator: %w", err)
			}
			// Auth0 tokens carry their own prefix, so it runs ahead of the scheduler check.
			validators = append([]router.AuthValidator{v}, validators...)
		case "header":
			validators = append(validators, router.NewHeaderValidator(
				GetEnvAsStringOr("AUTH_USER_HEADER", "X-User-ID"),
			))
		default:
			return nil, fmt.Errorf("unknown auth driver [%s]", driver)
		}
	}

	return router.NewAuthMiddleware(validators), nil
}
