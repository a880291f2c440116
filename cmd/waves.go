/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/gowaves/InputParameters"
	"github.com/notargets/gowaves/fields"
	"github.com/notargets/gowaves/ocean_waves"
	"github.com/notargets/gowaves/sim"
	"github.com/notargets/gowaves/utils"
)

type ModelWaves struct {
	ICFile  string
	Profile bool
}

// WavesCmd represents the waves command
var WavesCmd = &cobra.Command{
	Use:   "waves",
	Short: "Run relaxation zone wave generation on a uniform mesh",
	Long: `Run relaxation zone wave generation on a uniform mesh, printing the
inflow boundary data and writing diagnostics to the post processing directory`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		mw := &ModelWaves{}
		if mw.ICFile, err = cmd.Flags().GetString("inputConditionsFile"); err != nil {
			panic(err)
		}
		mw.Profile, _ = cmd.Flags().GetBool("profile")
		if err = runWavesCmd(mw); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(WavesCmd)
	WavesCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file for the mesh, time stepping and OceanWaves parameters")
	WavesCmd.Flags().BoolP("profile", "p", false, "write a CPU profile of the run")
}

func runWavesCmd(mw *ModelWaves) (err error) {
	if mw.Profile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}
	var (
		ip   *InputParameters.InputParametersWaves
		data []byte
	)
	if ip, data, err = processWavesInput(mw); err != nil {
		return
	}
	ip.Print()
	v := viper.GetViper()
	v.SetConfigType("yaml")
	if err = v.MergeConfig(bytes.NewReader(data)); err != nil {
		return
	}
	_, err = RunWaves(ip, v)
	return
}

// ExampleInput is printed when no input file is given
const ExampleInput = `
########################################
Title: "Flume"
ProbLo: [0., 0., -0.5]
ProbHi: [20., 1., 0.5]
NCell: [80, 1, 16]
DeltaT: 0.01
FinalTime: 4.
OutputInterval: 100
Physics: [MultiPhase]
OceanWaves:
  type: StokesWaves
  wave_height: 0.05
  wave_period: 1.6
  stokes_order: 5
  water_depth: 0.5
########################################
`

func processWavesInput(mw *ModelWaves) (ip *InputParameters.InputParametersWaves, data []byte, err error) {
	if len(mw.ICFile) == 0 {
		fmt.Printf("Example File:%s\n", ExampleInput)
		err = fmt.Errorf("must supply an input parameters file (-I, --inputConditionsFile)")
		return
	}
	if data, err = ioutil.ReadFile(mw.ICFile); err != nil {
		return
	}
	ip = &InputParameters.InputParametersWaves{}
	err = ip.Parse(data)
	return
}

// RunWaves steps the wave physics through the run described by ip, with the
// OceanWaves, incflo and MultiPhase settings taken from v
func RunWaves(ip *InputParameters.InputParametersWaves, v *viper.Viper) (ow *ocean_waves.OceanWaves, err error) {
	var (
		geom   = fields.NewGeometry(ip.ProbLo, ip.ProbHi, ip.NCell)
		mesh   = fields.NewMesh(geom, ip.NumLevels, ip.RefRatio)
		s      = sim.NewCFDSim(mesh, ip.Physics...)
		repo   = s.Repo()
		st     = s.Time()
		nSteps = ip.NumSteps()
	)
	s.PostDir = ip.PostDir
	s.ProcLimit = ip.ProcLimit
	if err = s.ReadInputs(v); err != nil {
		return
	}
	repo.DeclareField("velocity", 3, 3)
	repo.DeclareField("levelset", 1, 3)
	repo.DeclareField("vof", 1, 2)
	repo.DeclareField("density", 1, 3)

	ow = ocean_waves.NewOceanWaves(s)
	if err = ow.PreInitActions(v); err != nil {
		return
	}
	for lev := 0; lev < repo.NumActiveLevels(); lev++ {
		if err = ow.InitializeFields(lev, mesh.Geom(lev)); err != nil {
			return
		}
	}
	ow.PostInitActions()
	for step := 0; step < nSteps; step++ {
		st.NewTimeStep(ip.DeltaT)
		ow.PreAdvanceWork()
		ow.PrePredictorWork()
		if err = fillInflow(ow, repo); err != nil {
			return
		}
		ow.PostAdvanceWork()
		st.Advance()
		if err = checkNaN(repo); err != nil {
			err = fmt.Errorf("step %d, time %g: %w", st.TimeIndex, st.CurrentTime, err)
			return
		}
		if ip.OutputInterval > 0 && st.TimeIndex%ip.OutputInterval == 0 {
			if err = writeOutputs(ow, geom); err != nil {
				return
			}
		}
	}
	if ip.OutputInterval <= 0 || st.TimeIndex%ip.OutputInterval != 0 {
		err = writeOutputs(ow, geom)
	}
	fmt.Println(utils.GetMemUsage())
	return
}

// fillInflow sets the ghost cells of the live fields beyond the inlet
func fillInflow(ow *ocean_waves.OceanWaves, repo *fields.FieldRepo) (err error) {
	names := []string{"velocity"}
	if ow.MultiPhaseMode() {
		names = append(names, "levelset", "vof")
	}
	for lev := 0; lev < repo.NumActiveLevels(); lev++ {
		for _, name := range names {
			if err = ow.Boundary().SetInflow(name, lev, ocean_waves.XLo, repo.GetField(name).Level(lev)); err != nil {
				return
			}
		}
	}
	return
}

// checkNaN scans every level of the live fields and of the wave targets
func checkNaN(repo *fields.FieldRepo) (err error) {
	for _, name := range repo.FieldNames() {
		f := repo.GetField(name)
		for lev := 0; lev < f.NumLevels(); lev++ {
			if utils.IsNan(f.Level(lev).Data) {
				return fmt.Errorf("NaN in %s on level %d", name, lev)
			}
		}
	}
	return
}

func writeOutputs(ow *ocean_waves.OceanWaves, geom fields.Geometry) (err error) {
	var (
		bndry    = ow.Boundary()
		k        = geom.NCell[2] / 2
		_, _, z  = geom.CellCenter(-1, 0, k)
		phi, vel []float64
		outDir   string
	)
	if phi, err = bndry.Sample("levelset", 0, -1, 0, k); err != nil {
		return
	}
	if vel, err = bndry.Sample("velocity", 0, -1, 0, k); err != nil {
		return
	}
	fmt.Printf("t = %8.5f, inflow eta = %8.5f, u = %8.5f, w = %8.5f at z = %8.5f\n",
		bndry.BoundaryDataTime(), phi[0]+z, vel[0], vel[2], z)
	if outDir, err = ow.PrepareOutputs(); err != nil {
		return
	}
	fmt.Printf("wrote %s\n", outDir)
	return
}
