package main

import (
	"strings"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/spf13/viper"

	"github.com/greenepidemic/greenepidemic-api/schema"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("greenepidemic")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	db, err := gorm.Open("postgres", viper.GetString("orm.conn"))
	if err != nil {
		panic(err)
	}

	if err := db.Exec(`CREATE SCHEMA IF NOT EXISTS greenepidemic`).Error; err != nil {
		panic(err)
	}

	if err := db.Exec("SET search_path TO greenepidemic").Error; err != nil {
		panic(err)
	}

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		panic(err)
	}

	if err := db.AutoMigrate(
		&schema.Account{},
		&schema.AccountProfile{},
		&schema.Consultation{},
	).Error; err != nil {
		panic(err)
	}

	if err := db.Model(schema.Account{}).
		AddUniqueIndex("account_unique_email", "email").Error; err != nil {
		panic(err)
	}

	schema.NewMongoDBIndexer(viper.GetString("mongo.conn"), viper.GetString("mongo.database")).IndexAll()
}
