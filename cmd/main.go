package main

import (
    "os"

    "github.com/iyunseong/mental-n-fit-sub000/config"
    "github.com/iyunseong/mental-n-fit-sub000/routes"
)

func main() {
    db := config.InitDB()
    r := routes.SetupRouter(db)

    port := os.Getenv("PORT")
    if port == "" {
        port = "8080"
    }
    r.Run(":" + port)
}
