package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/aidconnect/aid-connect-api/schema"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("aidconnect")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	var configFile string

	flag.StringVar(&configFile, "c", "", "[optional] path of configuration file")
	flag.Parse()

	if configFile != "" {
		viper.SetConfigType("yaml")
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			panic(err)
		}
	}

	indexer := schema.NewMongoDBIndexer(viper.GetString("mongo.conn"), viper.GetString("mongo.database"))
	indexer.IndexAll()

	fmt.Println("indexes of users, requests and offers are ready")
}
