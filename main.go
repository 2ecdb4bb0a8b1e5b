package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"nano-task/taskpolling"
)

const taskFormat = "%s task\n"

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	manager := taskpolling.NewManager()

	removeOneSec := false
	oneSec := taskpolling.New(time.Second, func() {
		fmt.Printf(taskFormat, "1 second")
	}, taskpolling.WithName("1Sec"), taskpolling.WithLogging(logger))
	fiveSec := taskpolling.New(5*time.Second, func() {
		fmt.Printf(taskFormat, "5 second")
	})
	tenSec := taskpolling.New(10*time.Second, func() {
		fmt.Printf(taskFormat, "10 second")
	}, taskpolling.WithName("10Sec"))
	fifteenSec := taskpolling.New(15*time.Second, func() {
		fmt.Printf(taskFormat, "15 second")
		removeOneSec = true
	})

	manager.Add("1Sec", oneSec)
	manager.AddTask(fiveSec)
	manager.Add("10Sec", tenSec)
	manager.AddTask(fifteenSec)

	oneSecRemoved := false
	for {
		manager.Update()

		if !oneSecRemoved && removeOneSec {
			manager.Remove("1Sec")
			oneSecRemoved = true
		}

		time.Sleep(10 * time.Millisecond)
	}
}
