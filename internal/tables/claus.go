// Package tables supplies the static Claus model lookup tables.
//
// Each table holds cumulative breast-cancer risks: rows are patient age
// bins anchored at age 29 with the final row holding the lifetime (age
// 79) figure, and columns are 10-year relative onset-age bins starting
// at age 20. The values are fixed model coefficients; this package
// makes no judgement about their clinical correctness.
package tables

import "github.com/claus-risk-server/internal/domain"

// Provider hands out the validated table set.
type Provider struct {
	tables domain.ClausTables
}

// NewProvider validates the embedded table data once and returns a
// provider over it. A shape error here is a build-data defect.
func NewProvider() (*Provider, error) {
	ct := domain.ClausTables{
		OneFirstDegree:               oneFirstDegree,
		OneSecondDegree:              oneSecondDegree,
		TwoFirstDegree:               twoFirstDegree,
		TwoSecondDegreeSameSide:      twoSecondDegreeSameSide,
		TwoSecondDegreeDifferentSide: twoSecondDegreeDifferentSide,
		MotherMaternalAunt:           motherMaternalAunt,
		MotherPaternalAunt:           motherPaternalAunt,
	}
	if err := ct.Validate(); err != nil {
		return nil, err
	}
	return &Provider{tables: ct}, nil
}

// Tables implements domain.TableProvider.
func (p *Provider) Tables() (domain.ClausTables, error) {
	return p.tables, nil
}

var oneFirstDegree = domain.SingleRelativeTable{
	{0.003, 0.002, 0.002, 0.001, 0.001, 0.001},
	{0.012, 0.009, 0.007, 0.006, 0.005, 0.005},
	{0.038, 0.030, 0.024, 0.019, 0.016, 0.015},
	{0.089, 0.070, 0.056, 0.045, 0.038, 0.035},
	{0.152, 0.119, 0.095, 0.076, 0.064, 0.059},
	{0.211, 0.165, 0.132, 0.105, 0.089, 0.082},
}

var oneSecondDegree = domain.SingleRelativeTable{
	{0.002, 0.002, 0.002, 0.001, 0.001, 0.001},
	{0.009, 0.008, 0.007, 0.006, 0.005, 0.005},
	{0.029, 0.024, 0.021, 0.019, 0.017, 0.016},
	{0.065, 0.056, 0.048, 0.043, 0.039, 0.037},
	{0.109, 0.093, 0.080, 0.071, 0.065, 0.061},
	{0.148, 0.126, 0.109, 0.097, 0.088, 0.083},
}

var twoFirstDegree = domain.PairRelativeTable{
	{
		{0.005, 0.005, 0.004, 0.004, 0.004, 0.004},
		{0.005, 0.004, 0.004, 0.004, 0.003, 0.003},
		{0.004, 0.004, 0.004, 0.003, 0.003, 0.003},
		{0.004, 0.004, 0.003, 0.003, 0.003, 0.003},
		{0.004, 0.003, 0.003, 0.003, 0.003, 0.002},
		{0.004, 0.003, 0.003, 0.003, 0.002, 0.002},
	},
	{
		{0.023, 0.021, 0.020, 0.018, 0.017, 0.017},
		{0.021, 0.019, 0.017, 0.016, 0.015, 0.015},
		{0.020, 0.017, 0.016, 0.015, 0.014, 0.013},
		{0.018, 0.016, 0.015, 0.013, 0.012, 0.012},
		{0.017, 0.015, 0.014, 0.012, 0.011, 0.011},
		{0.017, 0.015, 0.013, 0.012, 0.011, 0.010},
	},
	{
		{0.077, 0.070, 0.065, 0.061, 0.057, 0.055},
		{0.070, 0.063, 0.058, 0.054, 0.050, 0.048},
		{0.065, 0.058, 0.053, 0.048, 0.045, 0.043},
		{0.061, 0.054, 0.048, 0.044, 0.040, 0.039},
		{0.057, 0.050, 0.045, 0.040, 0.037, 0.035},
		{0.055, 0.048, 0.043, 0.039, 0.035, 0.033},
	},
	{
		{0.183, 0.166, 0.154, 0.143, 0.135, 0.131},
		{0.166, 0.149, 0.137, 0.127, 0.118, 0.114},
		{0.154, 0.137, 0.125, 0.114, 0.106, 0.102},
		{0.143, 0.127, 0.114, 0.104, 0.095, 0.091},
		{0.135, 0.118, 0.106, 0.095, 0.087, 0.083},
		{0.131, 0.114, 0.102, 0.091, 0.083, 0.079},
	},
	{
		{0.314, 0.286, 0.264, 0.246, 0.232, 0.225},
		{0.286, 0.257, 0.236, 0.218, 0.203, 0.196},
		{0.264, 0.236, 0.214, 0.196, 0.182, 0.175},
		{0.246, 0.218, 0.196, 0.178, 0.164, 0.157},
		{0.232, 0.203, 0.182, 0.164, 0.150, 0.143},
		{0.225, 0.196, 0.175, 0.157, 0.143, 0.136},
	},
	{
		{0.440, 0.400, 0.370, 0.345, 0.325, 0.315},
		{0.400, 0.360, 0.330, 0.305, 0.285, 0.275},
		{0.370, 0.330, 0.300, 0.275, 0.255, 0.245},
		{0.345, 0.305, 0.275, 0.250, 0.230, 0.220},
		{0.325, 0.285, 0.255, 0.230, 0.210, 0.200},
		{0.315, 0.275, 0.245, 0.220, 0.200, 0.190},
	},
}

var twoSecondDegreeSameSide = domain.PairRelativeTable{
	{
		{0.004, 0.004, 0.003, 0.003, 0.003, 0.003},
		{0.004, 0.003, 0.003, 0.003, 0.003, 0.003},
		{0.003, 0.003, 0.003, 0.003, 0.003, 0.002},
		{0.003, 0.003, 0.003, 0.002, 0.002, 0.002},
		{0.003, 0.003, 0.003, 0.002, 0.002, 0.002},
		{0.003, 0.003, 0.002, 0.002, 0.002, 0.002},
	},
	{
		{0.016, 0.015, 0.014, 0.013, 0.012, 0.012},
		{0.015, 0.013, 0.012, 0.012, 0.011, 0.011},
		{0.014, 0.012, 0.012, 0.011, 0.010, 0.010},
		{0.013, 0.012, 0.011, 0.010, 0.010, 0.009},
		{0.012, 0.011, 0.010, 0.010, 0.009, 0.009},
		{0.012, 0.011, 0.010, 0.009, 0.009, 0.009},
	},
	{
		{0.051, 0.047, 0.044, 0.042, 0.040, 0.039},
		{0.047, 0.043, 0.040, 0.038, 0.037, 0.036},
		{0.044, 0.040, 0.038, 0.035, 0.034, 0.033},
		{0.042, 0.038, 0.035, 0.033, 0.032, 0.031},
		{0.040, 0.037, 0.034, 0.032, 0.030, 0.029},
		{0.039, 0.036, 0.033, 0.031, 0.029, 0.028},
	},
	{
		{0.117, 0.108, 0.102, 0.096, 0.093, 0.091},
		{0.108, 0.099, 0.093, 0.088, 0.084, 0.082},
		{0.102, 0.093, 0.086, 0.081, 0.078, 0.076},
		{0.096, 0.088, 0.081, 0.076, 0.073, 0.070},
		{0.093, 0.084, 0.078, 0.073, 0.069, 0.067},
		{0.091, 0.082, 0.076, 0.070, 0.067, 0.065},
	},
	{
		{0.197, 0.182, 0.171, 0.162, 0.157, 0.153},
		{0.182, 0.167, 0.157, 0.148, 0.142, 0.138},
		{0.171, 0.157, 0.146, 0.137, 0.131, 0.127},
		{0.162, 0.148, 0.137, 0.128, 0.122, 0.119},
		{0.157, 0.142, 0.131, 0.122, 0.116, 0.113},
		{0.153, 0.138, 0.127, 0.119, 0.113, 0.109},
	},
	{
		{0.270, 0.250, 0.235, 0.223, 0.215, 0.210},
		{0.250, 0.230, 0.215, 0.203, 0.195, 0.190},
		{0.235, 0.215, 0.200, 0.188, 0.180, 0.175},
		{0.223, 0.203, 0.188, 0.176, 0.168, 0.163},
		{0.215, 0.195, 0.180, 0.168, 0.160, 0.155},
		{0.210, 0.190, 0.175, 0.163, 0.155, 0.150},
	},
}

var twoSecondDegreeDifferentSide = domain.PairRelativeTable{
	{
		{0.003, 0.003, 0.003, 0.003, 0.003, 0.003},
		{0.003, 0.003, 0.003, 0.002, 0.002, 0.002},
		{0.003, 0.003, 0.002, 0.002, 0.002, 0.002},
		{0.003, 0.002, 0.002, 0.002, 0.002, 0.002},
		{0.003, 0.002, 0.002, 0.002, 0.002, 0.002},
		{0.003, 0.002, 0.002, 0.002, 0.002, 0.002},
	},
	{
		{0.014, 0.013, 0.012, 0.011, 0.011, 0.011},
		{0.013, 0.012, 0.011, 0.011, 0.010, 0.010},
		{0.012, 0.011, 0.010, 0.010, 0.009, 0.009},
		{0.011, 0.011, 0.010, 0.009, 0.009, 0.009},
		{0.011, 0.010, 0.009, 0.009, 0.008, 0.008},
		{0.011, 0.010, 0.009, 0.009, 0.008, 0.008},
	},
	{
		{0.044, 0.041, 0.038, 0.037, 0.035, 0.035},
		{0.041, 0.038, 0.036, 0.034, 0.032, 0.032},
		{0.038, 0.036, 0.033, 0.031, 0.030, 0.029},
		{0.037, 0.034, 0.031, 0.030, 0.028, 0.028},
		{0.035, 0.032, 0.030, 0.028, 0.027, 0.026},
		{0.035, 0.032, 0.029, 0.028, 0.026, 0.025},
	},
	{
		{0.100, 0.094, 0.088, 0.084, 0.081, 0.079},
		{0.094, 0.087, 0.082, 0.078, 0.075, 0.073},
		{0.088, 0.082, 0.076, 0.072, 0.069, 0.067},
		{0.084, 0.078, 0.072, 0.068, 0.065, 0.063},
		{0.081, 0.075, 0.069, 0.065, 0.062, 0.060},
		{0.079, 0.073, 0.067, 0.063, 0.060, 0.058},
	},
	{
		{0.168, 0.157, 0.148, 0.141, 0.136, 0.133},
		{0.157, 0.146, 0.137, 0.130, 0.125, 0.122},
		{0.148, 0.137, 0.127, 0.121, 0.115, 0.113},
		{0.141, 0.130, 0.121, 0.114, 0.109, 0.106},
		{0.136, 0.125, 0.115, 0.109, 0.104, 0.101},
		{0.133, 0.122, 0.113, 0.106, 0.101, 0.098},
	},
	{
		{0.230, 0.215, 0.202, 0.193, 0.186, 0.182},
		{0.215, 0.200, 0.187, 0.178, 0.171, 0.167},
		{0.202, 0.187, 0.174, 0.165, 0.158, 0.154},
		{0.193, 0.178, 0.165, 0.156, 0.149, 0.145},
		{0.186, 0.171, 0.158, 0.149, 0.142, 0.138},
		{0.182, 0.167, 0.154, 0.145, 0.138, 0.134},
	},
}

var motherMaternalAunt = domain.PairRelativeTable{
	{
		{0.004, 0.004, 0.004, 0.003, 0.003, 0.003},
		{0.004, 0.003, 0.003, 0.003, 0.003, 0.003},
		{0.003, 0.003, 0.003, 0.003, 0.003, 0.003},
		{0.003, 0.003, 0.003, 0.003, 0.002, 0.002},
		{0.003, 0.003, 0.003, 0.002, 0.002, 0.002},
		{0.003, 0.003, 0.002, 0.002, 0.002, 0.002},
	},
	{
		{0.017, 0.016, 0.015, 0.015, 0.014, 0.014},
		{0.015, 0.014, 0.013, 0.013, 0.013, 0.012},
		{0.014, 0.013, 0.012, 0.012, 0.011, 0.011},
		{0.013, 0.012, 0.011, 0.011, 0.010, 0.010},
		{0.012, 0.011, 0.011, 0.010, 0.010, 0.009},
		{0.012, 0.011, 0.010, 0.010, 0.009, 0.009},
	},
	{
		{0.055, 0.052, 0.050, 0.048, 0.046, 0.046},
		{0.050, 0.046, 0.044, 0.042, 0.041, 0.040},
		{0.046, 0.043, 0.040, 0.039, 0.037, 0.037},
		{0.043, 0.040, 0.037, 0.035, 0.034, 0.033},
		{0.040, 0.037, 0.035, 0.033, 0.032, 0.031},
		{0.039, 0.036, 0.033, 0.032, 0.030, 0.029},
	},
	{
		{0.128, 0.121, 0.116, 0.112, 0.109, 0.107},
		{0.116, 0.109, 0.103, 0.099, 0.096, 0.094},
		{0.107, 0.100, 0.095, 0.091, 0.088, 0.085},
		{0.100, 0.093, 0.087, 0.083, 0.080, 0.078},
		{0.094, 0.087, 0.081, 0.077, 0.074, 0.072},
		{0.091, 0.083, 0.078, 0.074, 0.071, 0.069},
	},
	{
		{0.219, 0.207, 0.198, 0.191, 0.186, 0.182},
		{0.198, 0.186, 0.176, 0.169, 0.164, 0.160},
		{0.183, 0.171, 0.162, 0.155, 0.150, 0.146},
		{0.170, 0.158, 0.149, 0.142, 0.137, 0.133},
		{0.160, 0.148, 0.139, 0.132, 0.127, 0.123},
		{0.155, 0.142, 0.133, 0.126, 0.121, 0.117},
	},
	{
		{0.305, 0.288, 0.275, 0.265, 0.258, 0.253},
		{0.275, 0.258, 0.245, 0.235, 0.228, 0.223},
		{0.255, 0.238, 0.225, 0.215, 0.208, 0.203},
		{0.237, 0.220, 0.207, 0.197, 0.190, 0.185},
		{0.223, 0.206, 0.193, 0.183, 0.176, 0.171},
		{0.215, 0.198, 0.185, 0.175, 0.168, 0.163},
	},
}

var motherPaternalAunt = domain.PairRelativeTable{
	{
		{0.004, 0.003, 0.003, 0.003, 0.003, 0.003},
		{0.003, 0.003, 0.003, 0.003, 0.003, 0.003},
		{0.003, 0.003, 0.003, 0.003, 0.003, 0.002},
		{0.003, 0.003, 0.003, 0.002, 0.002, 0.002},
		{0.003, 0.002, 0.002, 0.002, 0.002, 0.002},
		{0.003, 0.002, 0.002, 0.002, 0.002, 0.002},
	},
	{
		{0.016, 0.015, 0.014, 0.014, 0.014, 0.013},
		{0.014, 0.013, 0.013, 0.012, 0.012, 0.012},
		{0.013, 0.012, 0.012, 0.011, 0.011, 0.011},
		{0.012, 0.011, 0.011, 0.010, 0.010, 0.010},
		{0.012, 0.011, 0.010, 0.010, 0.009, 0.009},
		{0.011, 0.010, 0.010, 0.009, 0.009, 0.009},
	},
	{
		{0.052, 0.049, 0.047, 0.045, 0.044, 0.044},
		{0.047, 0.044, 0.042, 0.040, 0.039, 0.038},
		{0.043, 0.040, 0.038, 0.037, 0.036, 0.035},
		{0.040, 0.037, 0.035, 0.034, 0.033, 0.032},
		{0.038, 0.035, 0.033, 0.031, 0.030, 0.029},
		{0.036, 0.033, 0.031, 0.030, 0.029, 0.028},
	},
	{
		{0.121, 0.114, 0.110, 0.106, 0.103, 0.102},
		{0.109, 0.102, 0.098, 0.094, 0.091, 0.089},
		{0.101, 0.094, 0.089, 0.086, 0.083, 0.081},
		{0.093, 0.087, 0.082, 0.078, 0.076, 0.074},
		{0.088, 0.081, 0.077, 0.073, 0.070, 0.068},
		{0.084, 0.078, 0.073, 0.069, 0.067, 0.065},
	},
	{
		{0.205, 0.194, 0.186, 0.180, 0.176, 0.173},
		{0.185, 0.174, 0.166, 0.159, 0.155, 0.152},
		{0.171, 0.160, 0.152, 0.146, 0.141, 0.138},
		{0.158, 0.148, 0.140, 0.133, 0.129, 0.126},
		{0.149, 0.138, 0.130, 0.124, 0.119, 0.116},
		{0.143, 0.132, 0.125, 0.118, 0.114, 0.111},
	},
	{
		{0.284, 0.269, 0.258, 0.249, 0.243, 0.239},
		{0.255, 0.240, 0.229, 0.220, 0.214, 0.210},
		{0.236, 0.221, 0.210, 0.201, 0.195, 0.191},
		{0.219, 0.204, 0.193, 0.184, 0.178, 0.174},
		{0.206, 0.191, 0.180, 0.171, 0.165, 0.161},
		{0.198, 0.183, 0.172, 0.163, 0.157, 0.153},
	},
}

