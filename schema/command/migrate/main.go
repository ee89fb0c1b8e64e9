package main

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/spatialhub/geodata-api/schema"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("geodata")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

// Declares every collection index, in particular the unique location-name
// constraints that back the conflict detection of the record service.
func main() {
	schema.NewMongoDBIndexer(viper.GetString("mongo.conn"), viper.GetString("mongo.database")).IndexAll()
}
