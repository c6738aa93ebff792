package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/RichardKnop/machinery/v1"
	machineryconf "github.com/RichardKnop/machinery/v1/config"
	"github.com/getsentry/sentry-go"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"googlemaps.github.io/maps"

	"github.com/aidconnect/aid-connect-api/ai"
	"github.com/aidconnect/aid-connect-api/ai/gemini"
	"github.com/aidconnect/aid-connect-api/api"
	"github.com/aidconnect/aid-connect-api/background"
	"github.com/aidconnect/aid-connect-api/geo"
	"github.com/aidconnect/aid-connect-api/match"
	"github.com/aidconnect/aid-connect-api/ratelimit"
	"github.com/aidconnect/aid-connect-api/store"
)

var (
	server      *api.Server
	mongoStore  store.MongoStore
	redisClient *redis.Client
)

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stdout)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

func loadConfig(file string) {
	// Config from file
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix("aidconnect")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("server.port", "8000")
	viper.SetDefault("jwt.expire", 30)
	viper.SetDefault("mongo.database", "aid_connect")
}

// initAI returns nil services when no gemini key is configured, the API then
// answers with the default classification and approves all content
func initAI(ctx context.Context) (ai.Classifier, ai.Moderator) {
	apiKey := viper.GetString("gemini.apikey")
	if apiKey == "" {
		log.WithField("prefix", "init").Warn("No gemini api key, AI features are disabled")
		return nil, nil
	}

	generator, err := gemini.NewGenerator(ctx, apiKey, viper.GetString("gemini.model"))
	if err != nil {
		log.WithField("prefix", "init").WithError(err).Error("Failed to initialize gemini")
		return nil, nil
	}
	log.WithField("prefix", "init").Info("Initialized gemini with model ", generator.Model())

	return gemini.NewClassifier(generator), gemini.NewModerator(generator)
}

func initResolver() geo.AddressResolver {
	apiKey := viper.GetString("map.apikey")
	if apiKey == "" {
		return geo.NoopResolver{}
	}

	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		log.WithField("prefix", "init").WithError(err).Error("Failed to initialize map client")
		return geo.NoopResolver{}
	}

	return geo.NewGeocodingAddressResolver(client)
}

func initLimiter() ratelimit.RateLimiter {
	addr := viper.GetString("redis.addr")
	if addr == "" {
		log.WithField("prefix", "init").Warn("No redis address, submissions are not rate limited")
		return ratelimit.Unlimited{}
	}

	redisClient = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: viper.GetString("redis.password"),
	})
	return ratelimit.NewLimiter(redisClient)
}

func main() {
	var configFile string

	initialCtx, cancelInitialization := context.WithCancel(context.Background())

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info("Server is preparing to shutdown")

		if initialCtx != nil && cancelInitialization != nil {
			log.Info("Cancelling initialization")
			cancelInitialization()
			<-initialCtx.Done()
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if server != nil {
			log.Info("Shutdown api server")
			if err := server.Shutdown(ctx); err != nil {
				log.Error("Server Shutdown:", err)
			}
		}

		if mongoStore != nil {
			log.Info("Shutting down mongo store")
			mongoStore.Close()
		}

		if redisClient != nil {
			log.Info("Shutting down redis client")
			if err := redisClient.Close(); err != nil {
				log.Error(err)
			}
		}

		os.Exit(1)
	}()

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	// Sentry
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              viper.GetString("sentry.dsn"),
		AttachStacktrace: true,
		Environment:      viper.GetString("sentry.environment"),
		Dist:             viper.GetString("sentry.dist"),
	}); err != nil {
		log.Error(err)
	}
	log.WithField("prefix", "init").Info("Initialized sentry")

	jwtSecret := viper.GetString("jwt.secret")
	if jwtSecret == "" {
		log.Panic("jwt.secret is not set")
	}

	// Init redis task queue
	var conf = &machineryconf.Config{
		Broker:        viper.GetString("redis.conn"),
		DefaultQueue:  background.DefaultQueue,
		ResultBackend: viper.GetString("redis.conn"),
	}
	machineryServer, err := machinery.NewServer(conf)
	if err != nil {
		log.Panic(err)
	}

	// initialise mongodb connections
	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	opts.SetMaxPoolSize(viper.GetUint64("mongo.pool"))
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		log.Panicf("create mongo client with error: %s", err)
	}

	err = mongoClient.Connect(initialCtx)
	if nil != err {
		log.Panicf("connect mongo database with error: %s", err)
	}
	mongoStore = store.NewMongoStore(mongoClient, viper.GetString("mongo.database"))

	classifier, moderator := initAI(initialCtx)

	// Init http server
	server = api.NewServer(
		mongoStore,
		match.NewEngine(mongoStore, mongoStore),
		classifier,
		moderator,
		initResolver(),
		initLimiter(),
		machineryServer,
		jwtSecret,
		time.Duration(viper.GetInt("jwt.expire"))*time.Minute)
	log.WithField("prefix", "init").Info("Initialized http server")

	// Remove initial context
	initialCtx = nil
	cancelInitialization = nil

	log.Fatal(server.Run(":" + viper.GetString("server.port")))
}
