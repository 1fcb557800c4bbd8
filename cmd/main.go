package main

import (
	"fmt"
	"log/slog"
	"os"

	"buckingham"
	"buckingham/debug"
	"buckingham/maths"
	"buckingham/types"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))

	// 单摆：周期、摆长、质量、重力加速度
	pendulum := []types.Variable{
		types.NewVariable("period", types.D("T", 1)),
		types.NewVariable("length", types.D("L", 1)),
		types.NewVariable("mass", types.D("M", 1)),
		types.NewVariable("gravity", types.D("L", 1), types.D("T", -2)),
	}
	record := &debug.Record{}
	tr, err := buckingham.NewTransformer(pendulum, buckingham.WithDebug(record))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(tr)
	fmt.Println(tr.Transform([]float64{2.006, 1, 0.5, 9.81}))
	record.Render(os.Stdout)

	// 管流：密度、速度、管径、动力粘度、压降梯度
	pipe := []types.Variable{
		types.NewVariable("density", types.D("M", 1), types.D("L", -3)),
		types.NewVariable("velocity", types.D("L", 1), types.D("T", -1)),
		types.NewVariable("diameter", types.D("L", 1)),
		types.NewVariable("viscosity", types.D("M", 1), types.D("L", -1), types.D("T", -1)),
		types.NewVariable("gradient", types.D("M", 1), types.D("L", -2), types.D("T", -2)),
	}
	tr, err = buckingham.NewTransformer(pipe, buckingham.WithSolver(maths.EliminationSolver{}))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(tr)
	samples, _ := maths.FromRows([][]float64{
		{998, 1.0, 0.05, 1e-3, 200},
		{998, 2.0, 0.05, 1e-3, 700},
		{1.2, 10, 0.10, 1.8e-5, 15},
	})
	fmt.Println(tr.BatchTransform(samples, 1))
}
